package ports

import "go.trai.ch/unibuild/internal/core/domain"

// ManifestStore persists one manifest per unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get returns the unit's manifest. Returns nil, nil if none was recorded.
	Get(unit *domain.BuildUnit) (*domain.Manifest, error)

	// Put replaces the unit's manifest atomically.
	Put(unit *domain.BuildUnit, manifest *domain.Manifest) error
}
