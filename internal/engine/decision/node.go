package decision

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/core/ports"
)

// NodeID is the unique identifier for the rebuild decider Graft node.
const NodeID graft.ID = "engine.decider"

func init() {
	graft.Register(graft.Node[ports.RebuildDecider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.InspectorNodeID, fs.SnapshotterNodeID},
		Run: func(ctx context.Context) (ports.RebuildDecider, error) {
			inspector, err := graft.Dep[ports.OutputInspector](ctx)
			if err != nil {
				return nil, err
			}
			snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
			if err != nil {
				return nil, err
			}
			return NewDecider(inspector, snapshotter), nil
		},
	})
}
