package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/depgraph/model"
)

func TestParameterFlow_ExactNameMatchWithinSameResource(t *testing.T) {
	create := newPetOp("createPet", model.POST, "/pet")
	create.Produces["token"] = true

	use := newPetOp("usePetToken", model.POST, "/pet/exchange")
	use.ResourceType = "pet"
	use.Consumes["token"] = true

	cands, err := ParameterFlow{}.Analyze([]*model.Operation{create, use})
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "createPet", cands[0].Source.ID)
	assert.Equal(t, "usePetToken", cands[0].Target.ID)
	assert.Equal(t, model.ParameterData, cands[0].Kind)
	assert.Equal(t, 1.0, cands[0].Confidence)
}

func TestParameterFlow_GenericNameAcrossDifferentResourcesIsSuppressed(t *testing.T) {
	createPet := newPetOp("createPet", model.POST, "/pet")
	createPet.Produces["id"] = true

	createOrder := newPetOp("createOrder", model.POST, "/order")
	createOrder.Consumes["id"] = true

	cands, err := ParameterFlow{}.Analyze([]*model.Operation{createPet, createOrder})
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestParameterFlow_IDSuffixNameLinksAcrossResources(t *testing.T) {
	createPet := newPetOp("createPet", model.POST, "/pet")
	createPet.Produces["petId"] = true

	linkOrder := newPetOp("linkOrderToPet", model.POST, "/order")
	linkOrder.Consumes["petId"] = true

	cands, err := ParameterFlow{}.Analyze([]*model.Operation{createPet, linkOrder})
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "createPet", cands[0].Source.ID)
}

func TestParameterFlow_SemanticBackwardGetIntoCreateIsSuppressed(t *testing.T) {
	get := newPetOp("getPet", model.GET, "/pet/{petId}")
	get.Produces["token"] = true

	create := newPetOp("createPet", model.POST, "/pet")
	create.Consumes["token"] = true

	cands, err := ParameterFlow{}.Analyze([]*model.Operation{get, create})
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestParameterFlow_SemanticBackwardExemptForLoginAction(t *testing.T) {
	get := newPetOp("getSession", model.GET, "/pet/{petId}")
	get.Produces["token"] = true

	login := newPetOp("login", model.POST, "/pet/login")
	login.ResourceType = "pet"
	login.Consumes["token"] = true

	cands, err := ParameterFlow{}.Analyze([]*model.Operation{get, login})
	require.NoError(t, err)
	require.Len(t, cands, 1)
}

func TestParameterFlow_FuzzyVariantMatchWithinSameResource(t *testing.T) {
	create := newPetOp("createUser", model.POST, "/user")
	create.Produces["userId"] = true

	get := newPetOp("getUser", model.GET, "/user/{uid}")
	get.Consumes["uid"] = true

	cands, err := ParameterFlow{}.Analyze([]*model.Operation{create, get})
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, 0.6, cands[0].Confidence)
	assert.Equal(t, map[string]string{"userId": "uid"}, cands[0].ParameterMapping)
}

func TestAreVariants(t *testing.T) {
	assert.True(t, areVariants("id", "_id"))
	assert.True(t, areVariants("userId", "uid"))
	assert.False(t, areVariants("id", "id"))
	assert.False(t, areVariants("name", "status"))
}
