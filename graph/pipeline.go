package graph

import (
	"github.com/viant/depgraph/analyzer"
	"github.com/viant/depgraph/model"
)

// Assemble runs the serial stages of the pipeline — conflict
// resolution, DAG construction, and transitive reduction — over a
// candidate set produced by the analyzer stage (§4.7-§4.9, §5's
// requirement that these three stages observe serial semantics even
// when analyzers ran concurrently).
func Assemble(ops []*model.Operation, candidates []*analyzer.Candidate) (*Graph, BuildResult, int) {
	resolved := Resolve(candidates)
	g := New(ops)
	buildResult := Build(g, resolved)
	removed := Reduce(g)
	return g, buildResult, removed
}
