package fetch

import (
	"net/http"

	"go.trai.ch/unibuild/internal/core/ports"
)

// NewFetcherWithClient builds a Fetcher that downloads through client.
func NewFetcherWithClient(runner ports.CommandRunner, logger ports.Logger, client *http.Client) *Fetcher {
	return &Fetcher{runner: runner, logger: logger, client: client}
}

// ArchiveExt exposes archiveExt for tests.
var ArchiveExt = archiveExt

// SafeJoin exposes safeJoin for tests.
var SafeJoin = safeJoin
