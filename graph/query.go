package graph

import "github.com/viant/depgraph/model"

// DependenciesOf returns admitted edges targeting op, optionally
// filtered by kind (§4.10).
func (g *Graph) DependenciesOf(opID string, kind ...model.Kind) []*Edge {
	var want model.Kind
	filter := len(kind) > 0
	if filter {
		want = kind[0]
	}
	var out []*Edge
	for _, e := range g.In(opID) {
		if filter && e.Kind != want {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SequenceTo returns a topological ordering of op and every ancestor
// reachable by following edges backward from it. Any valid topological
// order is acceptable (§4.10); this returns one via recursive DFS
// post-order, which is stable for a given graph and traversal order.
func (g *Graph) SequenceTo(opID string) []*model.Operation {
	visited := map[string]bool{}
	var order []*model.Operation

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, e := range g.In(id) {
			visit(e.Source.ID)
		}
		if op, ok := g.Nodes[id]; ok {
			order = append(order, op)
		}
	}
	visit(opID)
	return order
}

// SummaryByKind returns the count of admitted edges per kind (§4.10).
func (g *Graph) SummaryByKind() map[model.Kind]int {
	out := map[model.Kind]int{}
	for _, e := range g.Edges() {
		out[e.Kind]++
	}
	return out
}
