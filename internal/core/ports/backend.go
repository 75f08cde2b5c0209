package ports

import (
	"context"

	"go.trai.ch/unibuild/internal/core/domain"
)

// BuildBackend configures and builds a unit. It is invoked with the process
// working directory set to the unit's working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type BuildBackend interface {
	Configure(ctx context.Context, unit *domain.BuildUnit) error
	Build(ctx context.Context, unit *domain.BuildUnit, target string) error
}

// BackendResolver returns the backend registered for a kind.
type BackendResolver interface {
	Backend(kind domain.BackendKind) (BuildBackend, error)
}
