package analyzer

import (
	"fmt"

	"github.com/viant/depgraph/model"
)

// Constraint infers ordering from declared enum constraints: an operation
// declaring an enum parameter precedes other operations on the same
// resource (§4.6). Range and pattern constraints are hooks that currently
// emit nothing; their absence must not affect correctness.
type Constraint struct{}

func (Constraint) Name() string { return "constraint" }

func (Constraint) Analyze(ops []*model.Operation) ([]*Candidate, error) {
	byResource := map[string][]*model.Operation{}
	for _, op := range ops {
		if op.ResourceType == "" {
			continue
		}
		byResource[op.ResourceType] = append(byResource[op.ResourceType], op)
	}

	var out []*Candidate
	for _, op := range ops {
		for _, p := range op.Parameters {
			if len(p.Enum) == 0 {
				continue
			}
			for _, other := range byResource[op.ResourceType] {
				if other.ID == op.ID {
					continue
				}
				out = append(out, &Candidate{
					Source: op, Target: other, Kind: model.Constraint, Confidence: 0.6,
					Constraint: "enum:" + p.Name,
					Reason:     fmt.Sprintf("%s declares enum constraint on %q", op.ID, p.Name),
				})
			}
		}
	}
	out = append(out, rangeConstraints(ops)...)
	out = append(out, patternConstraints(ops)...)
	return out, nil
}

// rangeConstraints is an unimplemented hook: §9 notes the non-enum
// subanalyzers are declared but not defined, and the test suite must not
// assume they produce edges.
func rangeConstraints(_ []*model.Operation) []*Candidate { return nil }

// patternConstraints is an unimplemented hook, see rangeConstraints.
func patternConstraints(_ []*model.Operation) []*Candidate { return nil }
