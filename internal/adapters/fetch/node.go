package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/logger"
	"go.trai.ch/unibuild/internal/adapters/shell"
	"go.trai.ch/unibuild/internal/core/ports"
)

// NodeID is the unique identifier for the source fetcher Graft node.
const NodeID graft.ID = "adapter.source_fetcher"

func init() {
	graft.Register(graft.Node[ports.SourceFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceFetcher, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(runner, log), nil
		},
	})
}
