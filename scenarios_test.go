package depgraph

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/viant/depgraph/openapi"
)

// txtarSource serves one named file out of a parsed txtar.Archive as an
// openapi.Source, so each literal scenario fixture can drive a full Build
// without touching the filesystem beyond the single archive read below.
type txtarSource struct{ archive *txtar.Archive }

func (s txtarSource) Load(ctx context.Context, name string) (*openapi.Document, error) {
	for _, f := range s.archive.Files {
		if f.Name == name {
			return openapi.Decode(f.Data)
		}
	}
	return nil, fmt.Errorf("scenario fixture %q not found in testdata/scenarios.txtar", name)
}

func loadScenarios(t *testing.T) txtarSource {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.txtar")
	require.NoError(t, err)
	return txtarSource{archive: txtar.Parse(data)}
}

func TestScenario_S1SimpleCRUDPet(t *testing.T) {
	result, err := Build(context.Background(), loadScenarios(t), "s1_pet_crud.yaml")
	require.NoError(t, err)

	pairs := map[[2]string]bool{}
	for _, e := range result.Graph.Edges() {
		pairs[[2]string{e.Source.ID, e.Target.ID}] = true
	}
	assert.Len(t, result.Graph.Edges(), 3)
	assert.True(t, pairs[[2]string{"createPet", "getPet"}])
	assert.True(t, pairs[[2]string{"createPet", "deletePet"}])
	assert.True(t, pairs[[2]string{"getPet", "updatePet"}])
}

func TestScenario_S2CrossResourceSpecificID(t *testing.T) {
	result, err := Build(context.Background(), loadScenarios(t), "s2_cross_resource_specific_id.yaml")
	require.NoError(t, err)

	edges := result.Graph.DependenciesOf("createOrder")
	require.Len(t, edges, 1)
	assert.Equal(t, "createPet", edges[0].Source.ID)
	assert.Greater(t, edges[0].Confidence, 0.5)
	assert.LessOrEqual(t, edges[0].Confidence, 1.0)
}

func TestScenario_S5Authentication(t *testing.T) {
	result, err := Build(context.Background(), loadScenarios(t), "s5_authentication.yaml")
	require.NoError(t, err)

	edges := result.Graph.DependenciesOf("listAdminUsers")
	require.Len(t, edges, 1)
	assert.Equal(t, "login", edges[0].Source.ID)
	assert.Empty(t, result.Graph.DependenciesOf("login"))
}
