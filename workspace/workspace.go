// Package workspace locates the Go module (by its go.mod file) that
// contains an OpenAPI spec being analyzed, so a build report can trace a
// graph artifact back to its owning module when the spec lives inside a
// larger monorepo.
//
// Adapted from the teacher's project-root detector
// (inspector/repository.Detector), which walks parent directories looking
// for marker files across several languages. Here the walk serves a
// single narrower purpose — resolving *this* build's module context —
// so only the Go branch is kept and it reports a single Module value
// rather than a multi-language Project/Repository pair.
package workspace

import (
	"context"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Module describes the Go module containing a given file, if any.
type Module struct {
	// Path is the module path declared in go.mod (e.g. "github.com/acme/api").
	Path string
	// Root is the directory containing go.mod.
	Root string
}

// Detect walks up from loc (a file or directory) looking for a go.mod,
// per the teacher's marker-walk pattern. It returns a zero Module with no
// error when no go.mod is found; that is expected for specs loaded from
// a bare file, a remote afs location, or an in-memory source.
func Detect(loc string) (Module, error) {
	abs, err := filepath.Abs(loc)
	if err != nil {
		return Module{}, err
	}
	dir := abs
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, statErr := os.Stat(goModPath); statErr == nil {
			path, readErr := modulePath(goModPath)
			if readErr != nil {
				return Module{}, readErr
			}
			return Module{Path: path, Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Module{}, nil
		}
		dir = parent
	}
}

func modulePath(goModPath string) (string, error) {
	fs := afs.New()
	content, err := fs.DownloadWithURL(context.Background(), goModPath)
	if err != nil || len(content) == 0 {
		return "", err
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil || mod.Module == nil {
		return "", err
	}
	return mod.Module.Mod.Path, nil
}
