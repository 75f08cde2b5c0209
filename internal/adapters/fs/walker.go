// Package fs provides file system adapters for snapshots, output inspection,
// install steps and scoped working directory changes.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"

	"go.trai.ch/unibuild/internal/core/domain"
)

// skippedDirs are never descended into.
var skippedDirs = []string{".git", ".hg", ".jj", domain.StateDirName}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root as a path starting with root.
// VCS metadata and build state directories are skipped. Walk errors are yielded
// with an empty path and stop the iteration.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && slices.Contains(skippedDirs, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
