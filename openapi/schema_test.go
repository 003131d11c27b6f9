package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSchemaNames_FlattensNestedAndArrayProperties(t *testing.T) {
	doc := mustDecode(t, `
paths:
  /x:
    get:
      responses:
        '200': {}
components:
  schemas:
    Order:
      type: object
      properties:
        id:
          type: string
        items:
          type: array
          items:
            type: object
            properties:
              sku:
                type: string
`)
	schema := asMap(doc.componentSchemas()["Order"])
	names := doc.extractSchemaNames(schema)
	assert.True(t, names["id"])
	assert.True(t, names["items.sku"])
}

func TestExtractSchemaNames_UnresolvedRefRecordsWarningAndSkipsSubtree(t *testing.T) {
	doc := mustDecode(t, `
paths:
  /x:
    get:
      responses:
        '200': {}
`)
	schema := raw{"$ref": "#/components/schemas/Missing"}
	names := doc.extractSchemaNames(schema)
	assert.Empty(t, names)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, "#/components/schemas/Missing", doc.Warnings[0].Pointer)
}

func TestExtractSchemaNames_RecursiveRefTerminates(t *testing.T) {
	doc := mustDecode(t, `
paths:
  /x:
    get:
      responses:
        '200': {}
components:
  schemas:
    Node:
      type: object
      properties:
        value:
          type: string
        child:
          $ref: '#/components/schemas/Node'
`)
	schema := asMap(doc.componentSchemas()["Node"])
	names := doc.extractSchemaNames(schema)
	assert.True(t, names["value"])
	assert.True(t, names["child.value"])
}
