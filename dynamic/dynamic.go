// Package dynamic implements the optional runtime-feedback layer named
// in §6: recording actual operation executions against the graph built
// by the static core, discovering parameters only visible at runtime,
// and adjusting edge confidence from observed success/failure.
package dynamic

import (
	"fmt"
	"sort"
	"time"

	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
)

// failureThreshold is the cumulative-failure count at which an edge is
// removed rather than merely weakened (§6, citing the NAUTILUS paper in
// the original implementation).
const failureThreshold = 10

// DynamicInputError signals an unknown operation ID passed to
// RecordExecution; no state changes when this is returned (§7).
type DynamicInputError struct {
	OperationID string
}

func (e *DynamicInputError) Error() string {
	return fmt.Sprintf("dynamic: unknown operation %q", e.OperationID)
}

// Manager applies runtime execution feedback to a built Graph. It must
// serialize its mutations against the graph the way §5 requires: only
// one owner mutates the DAG at a time, here the Manager itself.
type Manager struct {
	g       *graph.Graph
	history []executionRecord
	// failureCount tracks cumulative failures per (source,target) pair,
	// since graph.Edge itself isn't comparable (it embeds maps/slices).
	failureCount map[pairKey]int
}

type pairKey struct{ source, target string }

type executionRecord struct {
	operationID string
	success     bool
	parameters  map[string]interface{}
	at          time.Time
}

// NewManager wraps an already-built, reduced Graph.
func NewManager(g *graph.Graph) *Manager {
	return &Manager{g: g, failureCount: map[pairKey]int{}}
}

// RecordExecution applies the effects described in §6: on success, it
// extends the operation's produces set with names discovered in the
// response, emits DYNAMIC edges to any operation consuming a newly
// discovered name (subject to the same DAG admission rule as the static
// build), and strengthens confidence of edges already pointing at the
// operation; on failure, it weakens those edges and removes any that
// crosses failureThreshold cumulative failures.
func (m *Manager) RecordExecution(opID string, success bool, response map[string]interface{}, parameters map[string]interface{}) error {
	op, ok := m.g.Nodes[opID]
	if !ok {
		return &DynamicInputError{OperationID: opID}
	}
	m.history = append(m.history, executionRecord{operationID: opID, success: success, parameters: parameters, at: time.Now()})

	if success {
		m.handleSuccess(op, response, parameters)
	} else {
		m.handleFailure(op)
	}
	return nil
}

func (m *Manager) handleSuccess(op *model.Operation, response map[string]interface{}, parameters map[string]interface{}) {
	if _, ok := op.Annotations["success"]; !ok {
		op.Annotations["success"] = true
		op.Annotations["successful_params"] = parameters
	}

	discovered := extractNames(response, "")
	var fresh []string
	for name := range discovered {
		if !op.Produces[name] {
			fresh = append(fresh, name)
		}
	}
	if len(fresh) > 0 {
		sort.Strings(fresh)
		for _, name := range fresh {
			op.Produces[name] = true
		}
		m.emitDynamicEdges(op, fresh)
	}

	for _, e := range m.g.In(op.ID) {
		e.Confidence = model.Clamp(e.Confidence * 1.1)
		e.Verified = true
	}
}

func (m *Manager) handleFailure(op *model.Operation) {
	for _, e := range append([]*graph.Edge(nil), m.g.In(op.ID)...) {
		key := pairKey{e.Source.ID, e.Target.ID}
		m.failureCount[key]++
		if m.failureCount[key] >= failureThreshold {
			m.g.RemoveEdge(e)
			continue
		}
		e.Confidence = e.Confidence * 0.9
		if e.Confidence < 0.1 {
			e.Confidence = 0.1
		}
	}
}

// emitDynamicEdges creates a DYNAMIC candidate from producer to every
// operation already declared to consume one of the newly discovered
// names, admitting each through the ordinary DAG rule so a dynamic
// discovery can never introduce a cycle.
func (m *Manager) emitDynamicEdges(producer *model.Operation, freshNames []string) {
	for _, name := range freshNames {
		for _, consumer := range m.g.Nodes {
			if consumer.ID == producer.ID || !consumer.Consumes[name] {
				continue
			}
			edge := &graph.Edge{
				Source:           producer,
				Target:           consumer,
				Kind:             model.Dynamic,
				Confidence:       0.8,
				ParameterMapping: map[string]string{name: name},
				Reasons:          []string{fmt.Sprintf("dynamically discovered: %s produced by %s", name, producer.ID)},
			}
			graph.Build(m.g, []*graph.Edge{edge})
		}
	}
}

// extractNames flattens a response body into the dotted parameter
// names it contains, mirroring the static schema flattener so runtime-
// discovered and statically-declared names compare equal.
func extractNames(value interface{}, prefix string) map[string]bool {
	out := map[string]bool{}
	switch v := value.(type) {
	case map[string]interface{}:
		for key, child := range v {
			full := key
			if prefix != "" {
				full = prefix + "." + key
			}
			out[full] = true
			for name := range extractNames(child, full) {
				out[name] = true
			}
		}
	case []interface{}:
		if len(v) > 0 {
			for name := range extractNames(v[0], prefix) {
				out[name] = true
			}
		}
	}
	return out
}
