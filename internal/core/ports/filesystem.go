package ports

import "go.trai.ch/unibuild/internal/core/domain"

// Snapshotter lists a project tree before and after a build.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type Snapshotter interface {
	// CaptureBefore returns every file below root.
	CaptureBefore(root string) (domain.FileSet, error)
	// CaptureAfter returns the sorted files below root that are not in before.
	CaptureAfter(root string, before domain.FileSet) ([]string, error)
}

// OutputInspector reads file metadata for rebuild decisions and verification.
type OutputInspector interface {
	// DirExists reports whether path is an existing directory.
	DirExists(path string) bool
	// ModTime returns the modification time of path in Unix nanoseconds.
	// ok is false when the file does not exist.
	ModTime(path string) (mtime int64, ok bool, err error)
	// Missing returns the paths that do not exist, in input order.
	Missing(paths []string) ([]string, error)
}

// WorkdirChanger changes the process working directory for the duration of a step.
type WorkdirChanger interface {
	// Enter changes into dir, creating it if needed. The returned function
	// restores the previous directory and must be called on every path.
	Enter(dir string) (restore func() error, err error)
}

// Installer applies a unit's post-build install steps.
type Installer interface {
	// Install runs the unit's copy rules.
	Install(unit *domain.BuildUnit) error
}
