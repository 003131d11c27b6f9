// Package analyzer implements the independent analyzer stage of the
// dependency-inference pipeline: each analyzer inspects the read-only
// operation set and proposes candidate dependencies with a kind and a
// confidence score. Analyzers never see each other's output; conflicts
// across analyzers are resolved downstream by the graph package.
package analyzer

import "github.com/viant/depgraph/model"

// Candidate is a proposed edge, not yet admitted to the graph.
type Candidate = model.Dependency

// Analyzer produces candidate dependencies from a read-only operation set.
type Analyzer interface {
	// Name identifies the analyzer in build-report failure messages.
	Name() string
	Analyze(ops []*model.Operation) ([]*Candidate, error)
}
