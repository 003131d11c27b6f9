package graph

// BuildResult reports the outcome of admitting a resolved edge set into
// a DAG (§4.8): the graph itself plus rejection counters for reporting.
type BuildResult struct {
	Graph           *Graph
	SelfLoops       int
	CycleRejections int
}

// Build inserts edges into g in the order given (callers pass the
// priority-ascending, confidence-descending order Resolve produces),
// rejecting self-loops and any edge that would close a cycle.
func Build(g *Graph, edges []*Edge) BuildResult {
	result := BuildResult{Graph: g}
	for _, e := range edges {
		if e.Source.ID == e.Target.ID {
			result.SelfLoops++
			continue
		}
		if g.reachable(e.Target.ID, e.Source.ID, nil) {
			result.CycleRejections++
			continue
		}
		g.addEdge(e)
	}
	return result
}
