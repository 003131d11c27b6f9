package buildreport

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/model"
	"github.com/viant/depgraph/workspace"
)

func TestHistory_RecordAndLastRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistory(dbPath)
	require.NoError(t, err)
	defer h.Close()

	_, found, err := h.Last()
	require.NoError(t, err)
	assert.False(t, found)

	a, b := op("a", "GET", "/a"), op("b", "GET", "/b")
	g := graph.New([]*model.Operation{a, b})
	build := graph.Build(g, []*graph.Edge{{Source: a, Target: b, Kind: model.CRUD, Confidence: 0.9}})
	r, err := New(g, build, 0, nil, nil, workspace.Module{Path: "example.com/acme"})
	require.NoError(t, err)

	require.NoError(t, h.Record(r))

	fp, found, err := h.Last()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, r.Fingerprint, fp)
}
