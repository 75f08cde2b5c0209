package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/backend"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/unibuild/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "engine.executor"

func init() {
	graft.Register(graft.Node[ports.UnitBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			backend.NodeID,
			fs.WorkdirNodeID,
			fs.InstallerNodeID,
			fs.InspectorNodeID,
			fs.SnapshotterNodeID,
			manifest.NodeID,
		},
		Run: func(ctx context.Context) (ports.UnitBuilder, error) {
			backends, err := graft.Dep[ports.BackendResolver](ctx)
			if err != nil {
				return nil, err
			}

			workdir, err := graft.Dep[ports.WorkdirChanger](ctx)
			if err != nil {
				return nil, err
			}

			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}

			inspector, err := graft.Dep[ports.OutputInspector](ctx)
			if err != nil {
				return nil, err
			}

			snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			return NewExecutor(backends, workdir, installer, inspector, snapshotter, store), nil
		},
	})
}
