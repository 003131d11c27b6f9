package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/depgraph/graph"
)

// DOT renders g as a Graphviz DOT document. Sink format, not
// bit-exact-specified (§6); node labels and edge styling are a
// reasonable rendering, not a contract.
func DOT(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	for _, id := range sortedNodeIDs(g) {
		op := g.Nodes[id]
		fmt.Fprintf(&b, "  %q [label=%q];\n", id, fmt.Sprintf("%s %s", op.Method, op.Path))
	}
	for _, e := range sortedEdges(g) {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.Source.ID, e.Target.ID, e.Kind.JSON())
	}
	b.WriteString("}\n")
	return b.String()
}

// GraphML renders g as a minimal GraphML document.
func GraphML(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<graphml xmlns="http://graphml.graphdrawing.org/xmlns">` + "\n")
	b.WriteString(`  <graph id="dependencies" edgedefault="directed">` + "\n")
	for _, id := range sortedNodeIDs(g) {
		fmt.Fprintf(&b, "    <node id=%q/>\n", id)
	}
	for i, e := range sortedEdges(g) {
		fmt.Fprintf(&b, "    <edge id=\"e%d\" source=%q target=%q/>\n", i, e.Source.ID, e.Target.ID)
	}
	b.WriteString("  </graph>\n")
	b.WriteString("</graphml>\n")
	return b.String()
}

func sortedNodeIDs(g *graph.Graph) []string {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedEdges(g *graph.Graph) []*graph.Edge {
	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source.ID != edges[j].Source.ID {
			return edges[i].Source.ID < edges[j].Source.ID
		}
		return edges[i].Target.ID < edges[j].Target.ID
	})
	return edges
}
