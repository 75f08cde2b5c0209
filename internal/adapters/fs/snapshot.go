package fs

import (
	"path/filepath"
	"slices"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Snapshotter implements ports.Snapshotter by walking the whole tree.
type Snapshotter struct {
	walker *Walker
}

// NewSnapshotter creates a Snapshotter backed by walker.
func NewSnapshotter(walker *Walker) *Snapshotter {
	return &Snapshotter{walker: walker}
}

// CaptureBefore lists every file below root, relative to root in forward-slash form.
func (s *Snapshotter) CaptureBefore(root string) (domain.FileSet, error) {
	set := make(domain.FileSet)
	for path, err := range s.walker.WalkFiles(root) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "root", root)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotFailed.Error()), "path", path)
		}
		set.Add(filepath.ToSlash(rel))
	}
	return set, nil
}

// CaptureAfter returns the sorted files below root that are absent from before.
func (s *Snapshotter) CaptureAfter(root string, before domain.FileSet) ([]string, error) {
	after, err := s.CaptureBefore(root)
	if err != nil {
		return nil, err
	}

	added := make([]string, 0)
	for p := range after {
		if !before.Has(p) {
			added = append(added, p)
		}
	}
	slices.Sort(added)
	return added, nil
}
