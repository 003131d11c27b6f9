package analyzer

import (
	"fmt"
	"strings"

	"github.com/viant/depgraph/model"
)

// NestedResource infers parent-path creator before child-path operation
// (§4.5).
type NestedResource struct{}

func (NestedResource) Name() string { return "nested-resource" }

func (NestedResource) Analyze(ops []*model.Operation) ([]*Candidate, error) {
	postByPath := map[string]*model.Operation{}
	for _, op := range ops {
		if op.Method == model.POST {
			postByPath[op.Path] = op
		}
	}

	var out []*Candidate
	for _, op := range ops {
		segs := model.PathSegments(op.Path)
		for i := 1; i < len(segs); i++ {
			prefix := "/" + strings.Join(segs[:i], "/")
			creator, ok := postByPath[prefix]
			if !ok || creator.ID == op.ID {
				continue
			}
			out = append(out, &Candidate{
				Source: creator, Target: op, Kind: model.NestedResource, Confidence: 0.85,
				Reason: fmt.Sprintf("%s creates the parent resource at %s", creator.ID, prefix),
			})
		}
	}
	return out, nil
}
