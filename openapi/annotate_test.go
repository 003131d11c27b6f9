package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/depgraph/export"
	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
)

func TestAnnotate_InjectsOperationAndParameterExtensions(t *testing.T) {
	doc := mustDecode(t, petStoreSpec)
	ops, err := Extract(doc, Options{})
	require.NoError(t, err)

	var create, get *model.Operation
	for _, op := range ops {
		switch op.ID {
		case "createPet":
			create = op
		case "getPet":
			get = op
		}
	}
	require.NotNil(t, create)
	require.NotNil(t, get)

	g := graph.New(ops)
	graph.Build(g, []*graph.Edge{{Source: create, Target: get, Kind: model.CRUD, Confidence: 0.9}})

	annotated := doc.Annotate(g).(raw)
	paths := asMap(annotated["paths"])
	getOp := asMap(asMap(paths["/pet/{petId}"])["get"])

	extRaw, ok := getOp["x-operation-annotation"]
	require.True(t, ok)
	ext, ok := extRaw.(export.OperationAnnotation)
	require.True(t, ok)
	assert.Contains(t, ext.DepOperations, "createPet")

	params := asSlice(getOp["parameters"])
	require.Len(t, params, 1)
	_, ok = asMap(params[0])["x-parameter-annotation"]
	assert.True(t, ok)
}
