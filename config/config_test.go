package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasBuiltInKnobs(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.7, cfg.Confidence.MinDependencyAnnotation)
	assert.False(t, cfg.Output.EmitDOT)
	assert.Contains(t, cfg.Resource.IgnoreSegments, "search")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "depgraph.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[resource]
ignore_segments = ["archive"]

[confidence]
min_dependency_annotation = 0.9

[output]
emit_dot = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"archive"}, cfg.Resource.IgnoreSegments)
	assert.Equal(t, 0.9, cfg.Confidence.MinDependencyAnnotation)
	assert.True(t, cfg.Output.EmitDOT)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("DEPGRAPH_MIN_DEPENDENCY_ANNOTATION", "0.5")
	t.Setenv("DEPGRAPH_EMIT_GRAPHML", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Confidence.MinDependencyAnnotation)
	assert.True(t, cfg.Output.EmitGraphML)
}

func TestIgnoreSegmentSet_LowerCases(t *testing.T) {
	cfg := &Config{Resource: ResourceConfig{IgnoreSegments: []string{"Search", "QUERY"}}}
	set := cfg.IgnoreSegmentSet()
	assert.True(t, set["search"])
	assert.True(t, set["query"])
}
