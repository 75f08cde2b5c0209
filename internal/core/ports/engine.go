package ports

import (
	"context"

	"go.trai.ch/unibuild/internal/core/domain"
)

// Decision is the verdict of the rebuild decision engine for one unit.
type Decision struct {
	Build  bool
	Reason string
	// Snapshot is the pre-build tree listing, set when one was requested.
	Snapshot domain.FileSet
}

// RebuildDecider decides whether a unit must be built. manifest is nil when
// the unit was never recorded.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type RebuildDecider interface {
	ShouldBuild(ctx context.Context, unit *domain.BuildUnit, manifest *domain.Manifest, req domain.RebuildRequest) (Decision, error)
}

// StateObserver receives a unit's state transitions.
type StateObserver func(state domain.UnitState)

// UnitBuilder builds, installs, verifies and records a unit.
type UnitBuilder interface {
	// TryBuild returns nil only when the unit's outputs were verified and its
	// manifest persisted.
	TryBuild(ctx context.Context, unit *domain.BuildUnit, snapshot domain.FileSet, observe StateObserver) error
}
