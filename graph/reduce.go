package graph

// Reduce replaces g's edge set with its transitive reduction in place:
// the unique minimum edge set whose reachability relation equals the
// current graph's (§4.9). An edge u->v is removed iff some other
// directed path of length >= 2 from u to v still exists once the edge
// itself is set aside.
//
// Edges are considered in g.Edges() order, which is unspecified. Because
// the reduction of a DAG is unique regardless of processing order, both
// the resulting edge set and the returned removal count are the same for
// any order.
func Reduce(g *Graph) int {
	removed := 0
	for _, e := range g.Edges() {
		if g.reachable(e.Source.ID, e.Target.ID, e) {
			g.removeEdge(e)
			removed++
		}
	}
	return removed
}
