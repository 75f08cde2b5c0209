// Package manifest persists per-unit build manifests as JSON documents.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	ufs "go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore with one file per unit, located in the
// unit's build directory.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the unit's manifest, or nil, nil if none was recorded.
func (s *Store) Get(unit *domain.BuildUnit) (*domain.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := domain.ManifestPath(unit.ManifestDirectory(), unit.Name)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the unit definition
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnmarshalFailed.Error()), "path", path)
	}
	if m.FileTimestamps == nil {
		m.FileTimestamps = map[string]int64{}
	}
	return &m, nil
}

// Put replaces the unit's manifest atomically.
func (s *Store) Put(unit *domain.BuildUnit, m *domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Marshal(m)
	if err != nil {
		return err
	}

	path := domain.ManifestPath(unit.ManifestDirectory(), unit.Name)
	if err := ufs.WriteFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

// Marshal renders a manifest in its on-disk form.
func Marshal(m *domain.Manifest) ([]byte, error) {
	out := *m
	if out.FileTimestamps == nil {
		out.FileTimestamps = map[string]int64{}
	}
	if out.DiscoveredFiles == nil {
		out.DiscoveredFiles = []string{}
	}
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}
