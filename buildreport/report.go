// Package buildreport aggregates the non-fatal diagnostics of one pipeline
// run: per-kind admission counts, cycle rejections, isolated analyzer
// failures, reference-resolution warnings, and a content fingerprint used
// to assert the determinism property (spec §8 Property 7 — two builds of
// the same spec yield the same edge set).
package buildreport

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/minio/highwayhash"
	"go.uber.org/multierr"

	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
	"github.com/viant/depgraph/openapi"
	"github.com/viant/depgraph/workspace"
)

// fingerprintKey is the highwayhash key used to fingerprint a build's edge
// set, grounded on the teacher's inspector/graph.Hash helper. It need not
// be secret: the fingerprint is a content hash, not a MAC.
var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Report is the outcome of one Build invocation (SPEC_FULL §6.6).
type Report struct {
	ID          string
	Fingerprint uint64
	Module      workspace.Module

	NumOperations int
	AdmittedByKind map[model.Kind]int

	SelfLoops       int
	CycleRejections int
	EdgesReduced    int

	AnalyzerFailures   []string
	ReferenceWarnings  []openapi.ReferenceWarning
}

// New assembles a Report from the outcome of one pipeline run. analyzerErr
// is the (possibly nil, possibly multi-error) failure value returned by
// analyzer.Run; multierr.Errors flattens it into individual messages.
func New(g *graph.Graph, build graph.BuildResult, reduced int, analyzerErr error, warnings []openapi.ReferenceWarning, mod workspace.Module) (*Report, error) {
	fp, err := fingerprint(g)
	if err != nil {
		return nil, err
	}
	return &Report{
		ID:                uuid.NewString(),
		Fingerprint:       fp,
		Module:            mod,
		NumOperations:     len(g.Nodes),
		AdmittedByKind:    g.SummaryByKind(),
		SelfLoops:         build.SelfLoops,
		CycleRejections:   build.CycleRejections,
		EdgesReduced:      reduced,
		AnalyzerFailures:  errorMessages(analyzerErr),
		ReferenceWarnings: warnings,
	}, nil
}

// fingerprint hashes the sorted (source,target,kind) triples of g's
// admitted edges, so two builds over the same spec produce an identical
// value regardless of any hash-map iteration order upstream.
func fingerprint(g *graph.Graph) (uint64, error) {
	edges := g.Edges()
	triples := make([]string, 0, len(edges))
	for _, e := range edges {
		triples = append(triples, fmt.Sprintf("%s->%s:%s", e.Source.ID, e.Target.ID, e.Kind))
	}
	sort.Strings(triples)

	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	for _, t := range triples {
		if _, err := h.Write([]byte(t)); err != nil {
			return 0, err
		}
		if _, err := h.Write([]byte{0}); err != nil {
			return 0, err
		}
	}
	return h.Sum64(), nil
}

// errorMessages flattens a possibly-nil, possibly-combined error (as
// produced by go.uber.org/multierr.Append across analyzer goroutines)
// into individual messages for the report.
func errorMessages(err error) []string {
	var out []string
	for _, e := range multierr.Errors(err) {
		out = append(out, e.Error())
	}
	return out
}

// Summary renders a short human-readable line per admitted kind, sorted
// for deterministic CLI output.
func (r *Report) Summary() []string {
	kinds := make([]string, 0, len(r.AdmittedByKind))
	for k := range r.AdmittedByKind {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, fmt.Sprintf("%s: %d", k, r.AdmittedByKind[model.Kind(k)]))
	}
	return out
}
