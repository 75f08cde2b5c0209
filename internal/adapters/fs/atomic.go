package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so readers see either the old or the new content.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set file mode")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rename temp file"), "path", path)
	}
	return nil
}
