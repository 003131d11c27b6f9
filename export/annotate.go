package export

import (
	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
)

// OperationAnnotation is the `x-operation-annotation` extension (§6).
type OperationAnnotation struct {
	DepOperations []string          `json:"dep-operations"`
	TermOperation bool              `json:"term-operations,omitempty"`
	Aliases       map[string]string `json:"aliases,omitempty"`
}

// ParameterStrategy flags how a parameter should be treated by
// downstream test-sequence generation.
type ParameterStrategy struct {
	Example bool    `json:"Example"`
	Dynamic bool    `json:"Dynamic"`
	Success bool    `json:"Success"`
	Mutation float64 `json:"Mutation"`
}

// ParameterAnnotation is the `x-parameter-annotation` extension (§6).
type ParameterAnnotation struct {
	Strategy ParameterStrategy `json:"strategy"`
	Alias    []string          `json:"alias,omitempty"`
}

// minDependencyConfidence is the §6 threshold: only admitted sources
// with confidence >= 0.7 are listed in dep-operations.
const minDependencyConfidence = 0.7

// OperationAnnotations computes the x-operation-annotation extension for
// every operation in g.
func OperationAnnotations(g *graph.Graph) map[string]OperationAnnotation {
	out := make(map[string]OperationAnnotation, len(g.Nodes))
	for id, op := range g.Nodes {
		var deps []string
		for _, e := range g.In(id) {
			if e.Confidence >= minDependencyConfidence {
				deps = append(deps, e.Source.ID)
			}
		}
		out[id] = OperationAnnotation{
			DepOperations: deps,
			TermOperation: op.IsTerminal(),
			Aliases:       stringAliases(op.Annotations),
		}
	}
	return out
}

// ParameterAnnotations computes the x-parameter-annotation extension for
// every parameter of op.
func ParameterAnnotations(op *model.Operation) map[string]ParameterAnnotation {
	out := make(map[string]ParameterAnnotation, len(op.Parameters))
	for _, p := range op.Parameters {
		mutation := 0.5
		if len(p.Enum) > 0 {
			mutation = 1.0
		}
		success, _ := op.Annotations["success"].(bool)
		out[p.Name] = ParameterAnnotation{
			Strategy: ParameterStrategy{
				Example:  p.Example != nil,
				Dynamic:  op.Consumes[p.Name],
				Success:  success,
				Mutation: mutation,
			},
		}
	}
	return out
}

func stringAliases(annotations map[string]interface{}) map[string]string {
	raw, ok := annotations["aliases"].(map[string]string)
	if !ok {
		return nil
	}
	return raw
}
