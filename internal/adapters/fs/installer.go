package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer by copying files and patching text files.
type Installer struct {
	logger ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install applies the unit's copy rules. Relative patterns are resolved
// against the unit's build directory.
func (i *Installer) Install(unit *domain.BuildUnit) error {
	base := unit.ManifestDirectory()

	for _, rule := range unit.Config.Install {
		if err := i.copyRule(base, rule); err != nil {
			return zerr.With(err, "pattern", rule.Pattern)
		}
	}
	return nil
}

func (i *Installer) copyRule(base string, rule domain.CopyRule) error {
	pattern := rule.Pattern
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(base, pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return zerr.Wrap(err, "invalid copy pattern")
	}
	if len(matches) == 0 {
		return zerr.New("copy pattern matched nothing")
	}

	if err := os.MkdirAll(rule.Destination, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination"), "destination", rule.Destination)
	}

	for _, src := range matches {
		info, err := os.Stat(src)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "source", src)
		}
		dst := filepath.Join(rule.Destination, filepath.Base(src))
		if info.IsDir() {
			err = copyTree(src, dst, rule.Exclude)
		} else if !excluded(src, rule.Exclude) {
			err = copyFile(src, dst, info.Mode())
		}
		if err != nil {
			return err
		}
		i.logger.Info("installed " + filepath.Base(src) + " → " + rule.Destination)
	}
	return nil
}

func excluded(path string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}

func copyTree(src, dst string, exclude []string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, domain.DirPerm)
		}
		if excluded(path, exclude) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode())
	})
}

func copyFile(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src) //nolint:gosec // paths come from unit definitions
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open copy source"), "source", src)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create destination")
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm()) //nolint:gosec // see above
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create copy target"), "target", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "target", dst)
	}
	return out.Close()
}
