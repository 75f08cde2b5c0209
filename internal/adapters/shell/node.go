package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/logger"
	"go.trai.ch/unibuild/internal/core/ports"
)

// NodeID is the unique identifier for the command runner Graft node.
const NodeID graft.ID = "adapter.command_runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
