package dynamic

import (
	"fmt"

	"github.com/viant/depgraph/model"
)

// DiscoverAliases scans recorded successful executions for parameters
// that carried the same value across different operations, and records
// each finding as an `aliases` annotation on both operations. This
// supplements the static analyzers, which can only infer dependencies
// from declared names; an alias discovered here means two differently
// named parameters are the same underlying identifier at runtime.
//
// Grounded on the original implementation's parameter-pattern analysis,
// simplified to a pairwise scan over recorded history rather than a
// sliding sequence window, since the Manager already scopes history to
// one build's executions.
func (m *Manager) DiscoverAliases() {
	var successful []executionRecord
	for _, r := range m.history {
		if r.success {
			successful = append(successful, r)
		}
	}

	for i := 0; i < len(successful); i++ {
		for j := i + 1; j < len(successful); j++ {
			m.compareParameters(successful[i], successful[j])
		}
	}
}

func (m *Manager) compareParameters(a, b executionRecord) {
	if a.operationID == b.operationID {
		return
	}
	opA, okA := m.g.Nodes[a.operationID]
	opB, okB := m.g.Nodes[b.operationID]
	if !okA || !okB {
		return
	}

	for nameA, valueA := range a.parameters {
		if valueA == nil {
			continue
		}
		for nameB, valueB := range b.parameters {
			if nameA == nameB || valueA != valueB {
				continue
			}
			addAlias(opA, nameA, b.operationID, nameB)
			addAlias(opB, nameB, a.operationID, nameA)
		}
	}
}

// addAlias records that op's parameter name is the same underlying
// value as otherOp's otherName, under the `aliases` annotation key
// export.OperationAnnotations reads back out.
func addAlias(op *model.Operation, name, otherOp, otherName string) {
	raw, ok := op.Annotations["aliases"].(map[string]string)
	if !ok {
		raw = map[string]string{}
		op.Annotations["aliases"] = raw
	}
	raw[name] = fmt.Sprintf("%s.%s", otherOp, otherName)
}
