package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/adapters/manifest"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/unibuild/internal/engine/decision"
	"go.trai.ch/unibuild/internal/engine/executor"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			decision.NodeID,
			executor.NodeID,
			manifest.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			decider, err := graft.Dep[ports.RebuildDecider](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[ports.UnitBuilder](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(decider, builder, store, telemetry, log), nil
		},
	})
}
