package ports

import (
	"context"

	"go.trai.ch/unibuild/internal/core/domain"
)

// FetchOptions tunes a single retrieval.
type FetchOptions struct {
	// Force re-fetches and re-extracts even when the destination exists.
	Force bool
}

// SourceFetcher retrieves a unit's sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type SourceFetcher interface {
	// FetchOrUpdate makes the sources available locally and returns their path.
	// It is a no-op when the destination already exists and opts.Force is false.
	FetchOrUpdate(ctx context.Context, unitName string, spec domain.SourceSpec, opts FetchOptions) (string, error)
}
