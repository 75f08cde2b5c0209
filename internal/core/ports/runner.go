package ports

import (
	"context"

	"go.trai.ch/unibuild/internal/core/domain"
)

// CommandRunner executes external commands synchronously.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its captured output.
	// A non-zero exit is an error only when cmd.Critical is set.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
