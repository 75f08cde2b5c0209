package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/logger"
	"go.trai.ch/unibuild/internal/adapters/shell"
	"go.trai.ch/unibuild/internal/core/ports"
)

// NodeID is the unique identifier for the backend resolver Graft node.
const NodeID graft.ID = "adapter.backend_resolver"

func init() {
	graft.Register(graft.Node[ports.BackendResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BackendResolver, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(runner, log), nil
		},
	})
}
