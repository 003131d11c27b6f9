// Package graph assembles the candidates emitted by the analyzer stage
// into a single acyclic, transitively-reduced dependency graph (§4.7-
// §4.10) and answers the query surface built on top of it.
package graph

import "github.com/viant/depgraph/model"

// Edge is an admitted dependency between two operations, carrying the
// same fields as a Candidate plus the bookkeeping the resolver and
// reducer need.
type Edge struct {
	Source           *model.Operation
	Target           *model.Operation
	Kind             model.Kind
	Confidence       float64
	ParameterMapping map[string]string
	Constraint       string
	Reasons          []string
	// Verified is set true by the dynamic layer once a recorded
	// execution has confirmed this edge (§6 dynamic interface).
	Verified bool
}

// Graph is a directed acyclic graph over operations, keyed by operation
// ID so lookups don't depend on pointer identity.
type Graph struct {
	Nodes map[string]*model.Operation
	// adjacency from source operation ID to edges leaving it.
	adjacency map[string][]*Edge
	// reverse adjacency from target operation ID to edges entering it,
	// kept in sync with adjacency for O(1) reachability/query access.
	reverse map[string][]*Edge
}

// New returns an empty Graph seeded with every known operation as a
// node, so operations with no edges still appear in query results.
func New(ops []*model.Operation) *Graph {
	g := &Graph{
		Nodes:     make(map[string]*model.Operation, len(ops)),
		adjacency: make(map[string][]*Edge),
		reverse:   make(map[string][]*Edge),
	}
	for _, op := range ops {
		g.Nodes[op.ID] = op
	}
	return g
}

// Edges returns every admitted edge currently in the graph, in no
// particular order.
func (g *Graph) Edges() []*Edge {
	var out []*Edge
	for _, edges := range g.adjacency {
		out = append(out, edges...)
	}
	return out
}

// Out returns the edges leaving the operation with the given ID.
func (g *Graph) Out(id string) []*Edge { return g.adjacency[id] }

// In returns the edges entering the operation with the given ID.
func (g *Graph) In(id string) []*Edge { return g.reverse[id] }

func (g *Graph) addEdge(e *Edge) {
	g.adjacency[e.Source.ID] = append(g.adjacency[e.Source.ID], e)
	g.reverse[e.Target.ID] = append(g.reverse[e.Target.ID], e)
}

func (g *Graph) removeEdge(e *Edge) {
	g.adjacency[e.Source.ID] = removeOne(g.adjacency[e.Source.ID], e)
	g.reverse[e.Target.ID] = removeOne(g.reverse[e.Target.ID], e)
}

// RemoveEdge deletes e from the graph. Exported for the dynamic layer,
// which is the only caller permitted to mutate an already-built graph
// (§5: the DAG has exactly one mutating owner at a time).
func (g *Graph) RemoveEdge(e *Edge) { g.removeEdge(e) }

func removeOne(edges []*Edge, target *Edge) []*Edge {
	out := edges[:0]
	for _, e := range edges {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

// reachable reports whether to is reachable from from by following
// admitted edges forward, used by both cycle rejection (§4.8) and
// transitive reduction (§4.9).
func (g *Graph) reachable(from, to string, avoid *Edge) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.adjacency[cur] {
			if e == avoid {
				continue
			}
			if e.Target.ID == to {
				return true
			}
			if !visited[e.Target.ID] {
				visited[e.Target.ID] = true
				stack = append(stack, e.Target.ID)
			}
		}
	}
	return false
}
