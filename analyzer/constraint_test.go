package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/depgraph/model"
)

func TestConstraint_EnumParameterPrecedesSiblingOperations(t *testing.T) {
	listByStatus := newPetOp("listPetsByStatus", model.GET, "/pet")
	listByStatus.Parameters = []model.Parameter{
		{Name: "status", In: "query", Enum: []interface{}{"available", "sold"}},
	}
	deletePet := newPetOp("deletePet", model.DELETE, "/pet/{petId}")
	deletePet.ResourceType = "pet"

	cands, err := Constraint{}.Analyze([]*model.Operation{listByStatus, deletePet})
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "listPetsByStatus", cands[0].Source.ID)
	assert.Equal(t, "deletePet", cands[0].Target.ID)
	assert.Equal(t, "enum:status", cands[0].Constraint)
}

func TestConstraint_NoEnumParametersProduceNoCandidates(t *testing.T) {
	get := newPetOp("getPet", model.GET, "/pet/{petId}")
	get.Parameters = []model.Parameter{{Name: "petId", In: "path"}}

	cands, err := Constraint{}.Analyze([]*model.Operation{get})
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestConstraint_RangeAndPatternHooksEmitNothing(t *testing.T) {
	assert.Empty(t, rangeConstraints(nil))
	assert.Empty(t, patternConstraints(nil))
}
