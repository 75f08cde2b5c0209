package fs

import (
	"os"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Workdir implements ports.WorkdirChanger using the process working directory.
// The process has a single working directory, so only one unit may be inside
// Enter at a time.
type Workdir struct{}

// NewWorkdir creates a new Workdir.
func NewWorkdir() *Workdir {
	return &Workdir{}
}

// Enter changes into dir, creating it first if it does not exist.
func (w *Workdir) Enter(dir string) (func() error, error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkdirChangeFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkdirChangeFailed.Error()), "dir", dir)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkdirChangeFailed.Error()), "dir", dir)
	}

	return func() error {
		if err := os.Chdir(prev); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWorkdirChangeFailed.Error()), "dir", prev)
		}
		return nil
	}, nil
}
