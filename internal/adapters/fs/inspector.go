package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// Inspector implements ports.OutputInspector on the local file system.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// DirExists reports whether path is an existing directory.
func (i *Inspector) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ModTime returns the modification time of path in Unix nanoseconds.
func (i *Inspector) ModTime(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
	}
	return info.ModTime().UnixNano(), true, nil
}

// Missing returns the paths that do not exist, preserving their order.
func (i *Inspector) Missing(paths []string) ([]string, error) {
	var missing []string
	for _, p := range paths {
		_, ok, err := i.ModTime(p)
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}
