package fs

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// ApplyLinePatches appends the unit's missing patch lines to their files.
// Backends call it before configuring so the build sees the patched files.
// Relative paths are resolved against the unit's working directory.
func ApplyLinePatches(unit *domain.BuildUnit) error {
	for _, patch := range unit.Config.AppendLines {
		path := patch.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(unit.WorkingDirectory, path)
		}
		if err := appendMissingLines(path, patch.Lines); err != nil {
			return zerr.With(zerr.With(err, "file", path), "unit", unit.Name)
		}
	}
	return nil
}

// appendMissingLines appends each line not already present in path.
func appendMissingLines(path string, lines []string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from unit definitions
	if err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to read patch target")
	}

	present := make(map[string]bool)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		present[strings.TrimSpace(sc.Text())] = true
	}

	var buf bytes.Buffer
	if len(data) > 0 && data[len(data)-1] != '\n' {
		buf.WriteByte('\n')
	}
	for _, l := range lines {
		if present[strings.TrimSpace(l)] {
			continue
		}
		buf.WriteString(l)
		buf.WriteByte('\n')
		present[strings.TrimSpace(l)] = true
	}
	if buf.Len() == 0 || (buf.Len() == 1 && buf.Bytes()[0] == '\n') {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm) //nolint:gosec // see above
	if err != nil {
		return zerr.Wrap(err, "failed to open patch target")
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to patch file")
	}
	return f.Close()
}
