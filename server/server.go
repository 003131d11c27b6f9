// Package server hosts the Query Surface (spec §4.10) over HTTP, plus the
// optional dynamic-update endpoint (§6), using github.com/gorilla/mux. It
// is a sink/consumer boundary per SPEC_FULL §6.3: no analyzer logic lives
// here, only read access to an already-built graph and the dynamic
// recorder wrapping it.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/viant/depgraph/dynamic"
	"github.com/viant/depgraph/export"
	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
)

// Server exposes g (and, through recorder, the dynamic-update layer)
// over HTTP.
type Server struct {
	g        *graph.Graph
	recorder *dynamic.Manager
	router   *mux.Router
}

// New builds a Server for an already-assembled graph. recorder may be
// nil, in which case POST /executions responds 501 Not Implemented.
func New(g *graph.Graph, recorder *dynamic.Manager) *Server {
	s := &Server{g: g, recorder: recorder}
	s.router = mux.NewRouter()
	s.router.HandleFunc("/operations", s.listOperations).Methods(http.MethodGet)
	s.router.HandleFunc("/operations/{id}/dependencies", s.dependenciesOf).Methods(http.MethodGet)
	s.router.HandleFunc("/operations/{id}/sequence", s.sequenceTo).Methods(http.MethodGet)
	s.router.HandleFunc("/summary", s.summary).Methods(http.MethodGet)
	s.router.HandleFunc("/executions", s.recordExecution).Methods(http.MethodPost)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) listOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, export.Graph(s.g).Nodes)
}

func (s *Server) dependenciesOf(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.g.Nodes[id]; !ok {
		http.NotFound(w, r)
		return
	}
	var kind []model.Kind
	if k := r.URL.Query().Get("kind"); k != "" {
		kind = append(kind, model.Kind(k))
	}
	edges := s.g.DependenciesOf(id, kind...)
	out := make([]dependencyView, 0, len(edges))
	for _, e := range edges {
		out = append(out, dependencyView{
			Source:     e.Source.ID,
			Target:     e.Target.ID,
			Kind:       e.Kind.JSON(),
			Confidence: e.Confidence,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) sequenceTo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := s.g.Nodes[id]; !ok {
		http.NotFound(w, r)
		return
	}
	seq := s.g.SequenceTo(id)
	ids := make([]string, 0, len(seq))
	for _, op := range seq {
		ids = append(ids, op.ID)
	}
	writeJSON(w, http.StatusOK, ids)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	byKind := s.g.SummaryByKind()
	out := make(map[string]int, len(byKind))
	for k, v := range byKind {
		out[k.JSON()] = v
	}
	writeJSON(w, http.StatusOK, out)
}

type executionRequest struct {
	OperationID string                 `json:"operation_id"`
	Success     bool                   `json:"success"`
	Response    map[string]interface{} `json:"response"`
	Parameters  map[string]interface{} `json:"parameters"`
}

func (s *Server) recordExecution(w http.ResponseWriter, r *http.Request) {
	if s.recorder == nil {
		http.Error(w, "dynamic-update layer not configured", http.StatusNotImplemented)
		return
	}
	var req executionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	err := s.recorder.RecordExecution(req.OperationID, req.Success, req.Response, req.Parameters)
	if _, ok := err.(*dynamic.DynamicInputError); ok {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type dependencyView struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Kind       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
