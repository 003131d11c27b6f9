package buildreport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
	"github.com/viant/depgraph/workspace"
)

func op(id, method, path string) *model.Operation {
	return model.NewOperation(id, model.Method(method), path)
}

func TestNew_SummarizesAdmittedEdgesAndRejections(t *testing.T) {
	a, b := op("a", "GET", "/a"), op("b", "GET", "/b")
	g := graph.New([]*model.Operation{a, b})
	build := graph.Build(g, []*graph.Edge{{Source: a, Target: b, Kind: model.CRUD, Confidence: 0.9}})

	r, err := New(g, build, 0, nil, nil, workspace.Module{})
	require.NoError(t, err)
	assert.Equal(t, 2, r.NumOperations)
	assert.Equal(t, 1, r.AdmittedByKind[model.CRUD])
	assert.NotEmpty(t, r.ID)
	assert.Empty(t, r.AnalyzerFailures)
}

func TestNew_FlattensAnalyzerFailures(t *testing.T) {
	g := graph.New(nil)
	build := graph.BuildResult{Graph: g}
	failures := multierr.Append(errors.New("analyzer one failed"), errors.New("analyzer two failed"))

	r, err := New(g, build, 0, failures, nil, workspace.Module{})
	require.NoError(t, err)
	assert.Len(t, r.AnalyzerFailures, 2)
}

func TestFingerprint_IsDeterministicAndOrderIndependent(t *testing.T) {
	a, b, c := op("a", "GET", "/a"), op("b", "GET", "/b"), op("c", "GET", "/c")

	g1 := graph.New([]*model.Operation{a, b, c})
	graph.Build(g1, []*graph.Edge{
		{Source: a, Target: b, Kind: model.CRUD, Confidence: 0.9},
		{Source: a, Target: c, Kind: model.CRUD, Confidence: 0.9},
	})

	g2 := graph.New([]*model.Operation{a, b, c})
	graph.Build(g2, []*graph.Edge{
		{Source: a, Target: c, Kind: model.CRUD, Confidence: 0.9},
		{Source: a, Target: b, Kind: model.CRUD, Confidence: 0.9},
	})

	fp1, err := fingerprint(g1)
	require.NoError(t, err)
	fp2, err := fingerprint(g2)
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2)
}

func TestSummary_IsSortedByKind(t *testing.T) {
	a, b, c := op("a", "GET", "/a"), op("b", "GET", "/b"), op("c", "GET", "/c")
	g := graph.New([]*model.Operation{a, b, c})
	build := graph.Build(g, []*graph.Edge{
		{Source: a, Target: b, Kind: model.Constraint, Confidence: 0.6},
		{Source: a, Target: c, Kind: model.CRUD, Confidence: 0.9},
	})

	r, err := New(g, build, 0, nil, nil, workspace.Module{})
	require.NoError(t, err)
	assert.Equal(t, []string{"CONSTRAINT: 1", "CRUD: 1"}, r.Summary())
}
