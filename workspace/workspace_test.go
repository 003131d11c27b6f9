package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_FindsModuleInAncestorDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/acme\n\ngo 1.23\n"), 0o644))

	nested := filepath.Join(root, "api", "specs")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	specPath := filepath.Join(nested, "openapi.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("paths: {}\n"), 0o644))

	mod, err := Detect(specPath)
	require.NoError(t, err)
	assert.Equal(t, "example.com/acme", mod.Path)
	assert.Equal(t, root, mod.Root)
}

func TestDetect_NoGoModReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "openapi.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("paths: {}\n"), 0o644))

	mod, err := Detect(specPath)
	require.NoError(t, err)
	assert.Empty(t, mod.Path)
	assert.Empty(t, mod.Root)
}
