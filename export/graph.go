// Package export renders an assembled graph into the artifacts named by
// §6: the standalone graph JSON document, and the x-operation-annotation/
// x-parameter-annotation extension values that openapi.Document.Annotate
// injects into the original OpenAPI document.
package export

import (
	"sort"

	"github.com/viant/depgraph/graph"
)

// Node is the §6 node shape.
type Node struct {
	ID            string                 `json:"id"`
	Path          string                 `json:"path"`
	Method        string                 `json:"method"`
	ResourceType  string                 `json:"resource_type"`
	Consumes      []string               `json:"consumes"`
	Produces      []string               `json:"produces"`
	IsInteresting bool                   `json:"is_interesting"`
	Annotations   map[string]interface{} `json:"annotations"`
}

// EdgeDoc is the §6 edge shape.
type EdgeDoc struct {
	Source           string            `json:"source"`
	Target           string            `json:"target"`
	Type             string            `json:"type"`
	Confidence       float64           `json:"confidence"`
	ParameterMapping map[string]string `json:"parameter_mapping,omitempty"`
	Reason           string            `json:"reason"`
	Verified         bool              `json:"verified"`
}

// Metadata is the §6 metadata shape.
type Metadata struct {
	NumOperations   int `json:"num_operations"`
	NumDependencies int `json:"num_dependencies"`
}

// GraphDocument is the top-level graph JSON artifact.
type GraphDocument struct {
	Nodes    []Node    `json:"nodes"`
	Edges    []EdgeDoc `json:"edges"`
	Metadata Metadata  `json:"metadata"`
}

// Graph renders g into the graph JSON artifact, with nodes and edges
// sorted by ID for deterministic output (round-trip property 8).
func Graph(g *graph.Graph) *GraphDocument {
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	doc := &GraphDocument{}
	for _, id := range ids {
		op := g.Nodes[id]
		doc.Nodes = append(doc.Nodes, Node{
			ID:            op.ID,
			Path:          op.Path,
			Method:        string(op.Method),
			ResourceType:  op.ResourceType,
			Consumes:      op.SortedConsumes(),
			Produces:      op.SortedProduces(),
			IsInteresting: op.IsInteresting(),
			Annotations:   op.Annotations,
		})
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Source.ID != edges[j].Source.ID {
			return edges[i].Source.ID < edges[j].Source.ID
		}
		return edges[i].Target.ID < edges[j].Target.ID
	})
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			Source:           e.Source.ID,
			Target:           e.Target.ID,
			Type:             e.Kind.JSON(),
			Confidence:       e.Confidence,
			ParameterMapping: e.ParameterMapping,
			Reason:           reasonString(e.Reasons),
			Verified:         e.Verified,
		})
	}
	doc.Metadata = Metadata{NumOperations: len(doc.Nodes), NumDependencies: len(doc.Edges)}
	return doc
}

func reasonString(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	out := reasons[0]
	for _, r := range reasons[1:] {
		out += "; " + r
	}
	return out
}
