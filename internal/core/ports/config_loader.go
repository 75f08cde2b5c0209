package ports

import "go.trai.ch/unibuild/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads build.yml, user-config.yml and units.yml from cwd, applies
	// environment overrides and returns the resolved workspace.
	Load(cwd string) (*domain.Workspace, error)
}
