package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/unibuild/internal/adapters/logger"
	"go.trai.ch/unibuild/internal/core/ports"
)

const (
	WalkerNodeID      graft.ID = "adapter.fs.walker"
	SnapshotterNodeID graft.ID = "adapter.fs.snapshotter"
	InspectorNodeID   graft.ID = "adapter.fs.inspector"
	WorkdirNodeID     graft.ID = "adapter.fs.workdir"
	InstallerNodeID   graft.ID = "adapter.fs.installer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Snapshotter]{
		ID:        SnapshotterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Snapshotter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotter(walker), nil
		},
	})

	graft.Register(graft.Node[ports.OutputInspector]{
		ID:        InspectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputInspector, error) {
			return NewInspector(), nil
		},
	})

	graft.Register(graft.Node[ports.WorkdirChanger]{
		ID:        WorkdirNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkdirChanger, error) {
			return NewWorkdir(), nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log), nil
		},
	})
}
