// Package backend provides the build backends that configure and build units.
package backend

import (
	"context"

	ufs "go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.BackendResolver over a fixed set of backends.
type Resolver struct {
	backends map[domain.BackendKind]ports.BuildBackend
}

// NewResolver creates a Resolver with every built-in backend registered.
func NewResolver(runner ports.CommandRunner, logger ports.Logger) *Resolver {
	return &Resolver{
		backends: map[domain.BackendKind]ports.BuildBackend{
			domain.BackendCMake:     NewCMake(runner),
			domain.BackendScript:    NewScript(runner, logger),
			domain.BackendCompile:   NewCompile(runner),
			domain.BackendInstaller: NewInstaller(runner, logger),
			domain.BackendNone:      None{},
		},
	}
}

// Backend returns the backend registered for kind.
func (r *Resolver) Backend(kind domain.BackendKind) (ports.BuildBackend, error) {
	b, ok := r.backends[kind]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBackend, string(kind)), "backend", string(kind))
	}
	return b, nil
}

// None is the backend of units that are installed by copy rules alone.
type None struct{}

// Configure applies the unit's line patches.
func (None) Configure(_ context.Context, unit *domain.BuildUnit) error {
	return ufs.ApplyLinePatches(unit)
}

// Build does nothing.
func (None) Build(_ context.Context, _ *domain.BuildUnit, _ string) error { return nil }
