// Package project writes rendered output trees into a project directory.
//
// Writes are atomic per file and never touch files outside the tree's
// paths. Existing files are preserved unless force is set, so a user
// who has hand-edited a generated file keeps their edits on re-run.
package project

import (
	"os"
	"path/filepath"

	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/paths"
	"github.com/pabloism0x/kael/internal/render"
	"github.com/pabloism0x/kael/pkg/fileutil"
)

// Status describes what happened to a single path during Write.
type Status string

const (
	StatusCreated     Status = "created"
	StatusOverwritten Status = "overwritten"
	StatusSkipped     Status = "skipped"
)

// Result reports the outcome for one path, relative to the project root.
type Result struct {
	Path   string
	Status Status
}

// Write materializes tree under dir. Files that already exist are
// skipped unless force is set, in which case they are overwritten.
// Results follow the tree's path order.
func Write(tree *render.OutputTree, dir string, force bool) ([]Result, error) {
	results := make([]Result, 0, tree.Len())

	for _, rel := range tree.Paths() {
		target := filepath.Join(dir, filepath.FromSlash(rel))

		exists, err := fileExists(target)
		if err != nil {
			return nil, err
		}
		if exists && !force {
			results = append(results, Result{Path: rel, Status: StatusSkipped})
			continue
		}

		if err := paths.EnsureDir(filepath.Dir(target), 0o755); err != nil {
			return nil, err
		}
		if err := fileutil.AtomicWriteFile(target, tree.File(rel), 0o644); err != nil {
			return nil, err
		}

		status := StatusCreated
		if exists {
			status = StatusOverwritten
		}
		results = append(results, Result{Path: rel, Status: status})
	}

	return results, nil
}

// HasExisting returns the tree paths that already exist under dir,
// in tree order.
func HasExisting(tree *render.OutputTree, dir string) ([]string, error) {
	var existing []string
	for _, rel := range tree.Paths() {
		exists, err := fileExists(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		if exists {
			existing = append(existing, rel)
		}
	}
	return existing, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return false, errors.Newf("%s exists but is a directory", path)
	}
	return true, nil
}
