package depgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/depgraph/openapi"
)

const testSpec = `
paths:
  /pet:
    post:
      operationId: createPet
      responses:
        '201':
          content:
            application/json:
              schema:
                type: object
                properties:
                  id:
                    type: string
  /pet/{petId}:
    get:
      operationId: getPet
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        '200': {}
    put:
      operationId: updatePet
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        '200': {}
    delete:
      operationId: deletePet
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        '204': {}
`

// memSource is a fixed in-memory openapi.Source used so tests exercise
// Build without touching the filesystem.
type memSource struct{ spec string }

func (s memSource) Load(ctx context.Context, location string) (*openapi.Document, error) {
	return openapi.Decode([]byte(s.spec))
}

func TestBuild_ProducesReducedGraphAndReport(t *testing.T) {
	result, err := Build(context.Background(), memSource{spec: testSpec}, "petstore.yaml")
	require.NoError(t, err)

	assert.Len(t, result.Graph.Edges(), 3)
	assert.Equal(t, 4, result.Report.NumOperations)
	assert.Equal(t, 0, result.Report.CycleRejections)
	assert.NotZero(t, result.Report.Fingerprint)
}

func TestBuild_IsDeterministicAcrossRuns(t *testing.T) {
	r1, err := Build(context.Background(), memSource{spec: testSpec}, "petstore.yaml")
	require.NoError(t, err)
	r2, err := Build(context.Background(), memSource{spec: testSpec}, "petstore.yaml")
	require.NoError(t, err)

	assert.Equal(t, r1.Report.Fingerprint, r2.Report.Fingerprint)
	assert.Equal(t, len(r1.Graph.Edges()), len(r2.Graph.Edges()))
}

func TestBuild_FatalInputErrorAbortsBuild(t *testing.T) {
	_, err := Build(context.Background(), memSource{spec: `openapi: "3.0.0"`}, "bad.yaml")
	assert.Error(t, err)
}
