// Package fetch retrieves unit sources from version control and archives.
package fetch

import (
	"context"
	"errors"
	"net/http"
	"os"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.SourceFetcher for git, mercurial and HTTP sources.
type Fetcher struct {
	runner ports.CommandRunner
	logger ports.Logger
	client *http.Client
}

// NewFetcher creates a new Fetcher.
func NewFetcher(runner ports.CommandRunner, logger ports.Logger) *Fetcher {
	return &Fetcher{runner: runner, logger: logger, client: http.DefaultClient}
}

// FetchOrUpdate makes the unit's sources available and returns their local
// path. An existing destination is left alone unless opts.Force is set.
func (f *Fetcher) FetchOrUpdate(
	ctx context.Context,
	unitName string,
	spec domain.SourceSpec,
	opts ports.FetchOptions,
) (string, error) {
	if spec.URI == "" {
		return "", errors.Join(domain.ErrRetrievalFailed,
			zerr.With(zerr.Wrap(domain.ErrMissingSourceURI, unitName), "unit", unitName))
	}

	var err error
	switch spec.Kind {
	case domain.SourceGit:
		err = f.fetchGit(ctx, spec, opts)
	case domain.SourceHg:
		err = f.fetchHg(ctx, spec, opts)
	case domain.SourceHTTP:
		err = f.fetchHTTP(ctx, spec, opts)
	default:
		err = zerr.With(zerr.New("unknown source kind"), "kind", string(spec.Kind))
	}
	if err != nil {
		return "", errors.Join(domain.ErrRetrievalFailed, zerr.With(err, "unit", unitName))
	}

	path, err := spec.LocalPath()
	if err != nil {
		return "", errors.Join(domain.ErrRetrievalFailed, zerr.With(err, "unit", unitName))
	}
	return path, nil
}

// mustRetrieve reports whether the destination has to be (re)populated.
// Offline runs only populate what is missing.
func (f *Fetcher) mustRetrieve(ctx context.Context, dest string, force bool) bool {
	exists := dirExists(dest)
	if !exists {
		return true
	}
	if !force {
		return false
	}
	if domain.ConfigFromContext(ctx).Offline {
		f.logger.Warn("offline: not updating " + dest)
		return false
	}
	return true
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (f *Fetcher) exec(ctx context.Context, dir string, args ...string) error {
	_, err := f.runner.Run(ctx, domain.Command{Args: args, Dir: dir, Critical: true})
	return err
}
