package domain

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// LocalPath returns the directory holding the unit's sources: the
// destination, or its first directory matching Subdir. A download-only
// source with no match resolves to the destination.
func (s SourceSpec) LocalPath() (string, error) {
	if s.Subdir == "" {
		return s.Destination, nil
	}

	matches, err := filepath.Glob(filepath.Join(s.Destination, s.Subdir))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid subdir pattern"), "subdir", s.Subdir)
	}
	slices.Sort(matches)
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && info.IsDir() {
			return m, nil
		}
	}
	if s.DownloadOnly {
		return s.Destination, nil
	}
	return "", zerr.With(zerr.With(zerr.New("no directory matches subdir"),
		"destination", s.Destination), "subdir", s.Subdir)
}
