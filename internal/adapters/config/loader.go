// Package config provides the layered configuration loader for unibuild.
package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "UNIBUILD_"

//go:embed defaults/build.yml
var defaultSettings []byte

//go:embed defaults/units.yml
var defaultUnits []byte

// Loader implements ports.ConfigLoader. It layers the built-in defaults,
// build.yml, user-config.yml and the environment into one domain.Config and
// builds the unit list from the built-in units merged with units.yml.
type Loader struct {
	logger   ports.Logger
	environ  func() []string
	lookPath func(string) (string, error)
	numCPU   func() int
}

// NewLoader creates a new Loader reading the process environment and PATH.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:   logger,
		environ:  os.Environ,
		lookPath: exec.LookPath,
		numCPU:   runtime.NumCPU,
	}
}

// Load reads the configuration and unit list for the workspace rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve workspace root")
	}

	settings, err := l.loadSettings(root)
	if err != nil {
		return nil, err
	}

	cfg := l.buildConfig(root, settings)
	if err := l.resolveTools(cfg); err != nil {
		return nil, err
	}

	units, err := l.loadUnits(root, cfg)
	if err != nil {
		return nil, err
	}

	return &domain.Workspace{Root: root, Config: cfg, Units: units}, nil
}

func (l *Loader) loadSettings(root string) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(defaultSettings, &s); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to parse built-in defaults"))
	}

	for _, name := range []string{domain.BuildFileName, domain.UserConfigFileName} {
		if err := overlayFile(filepath.Join(root, name), &s); err != nil {
			return nil, err
		}
	}

	opts := env.Options{Environment: env.ToMap(l.environ()), Prefix: EnvPrefix}
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to parse environment overrides"))
	}
	return &s, nil
}

// overlayFile decodes the YAML file at path on top of out. Keys absent from
// the file keep their current value. A missing file is not an error.
func overlayFile(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the workspace root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read config file"), "file", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Join(domain.ErrConfigInvalid,
			zerr.With(zerr.Wrap(err, "failed to parse config file"), "file", path))
	}
	return nil
}

func (l *Loader) buildConfig(root string, s *Settings) *domain.Config {
	baseDir := s.BaseDir
	if baseDir == "" {
		baseDir = root
	}
	if !filepath.IsAbs(baseDir) {
		baseDir = filepath.Join(root, baseDir)
	}

	cfg := &domain.Config{
		BaseDir:             filepath.Clean(baseDir),
		Architecture:        s.Architecture,
		VCVersion:           s.VCVersion,
		BuildType:           s.BuildType,
		Generator:           s.Generator,
		Offline:             s.Offline,
		Optimize:            s.Optimize,
		DetectConfigChanges: s.DetectConfigChanges,
		JobCount:            s.JobCount,
		Qt: domain.QtSettings{
			Base:          s.Qt.Base,
			Makespec:      s.Qt.Makespec,
			EnvironmentID: s.Qt.EnvironmentID,
			ProfileName:   s.Qt.ProfileName,
			ProfileID:     s.Qt.ProfileID,
		},
		RequiredTools: append([]string(nil), s.RequiredTools...),
	}
	if cfg.JobCount <= 0 {
		cfg.JobCount = l.numCPU() * 2
	}

	// Paths may refer to base_dir, and the superrepo to the build directory,
	// so they are expanded in that order.
	values := map[string]string{"base_dir": cfg.BaseDir}
	cfg.Paths.Download = absPath(cfg.BaseDir, domain.Format(s.Paths.Download, values))
	cfg.Paths.Build = absPath(cfg.BaseDir, domain.Format(s.Paths.Build, values))
	cfg.Paths.Install = absPath(cfg.BaseDir, domain.Format(s.Paths.Install, values))
	cfg.Paths.Progress = absPath(cfg.BaseDir, domain.Format(s.Paths.Progress, values))
	cfg.Paths.Superrepo = absPath(cfg.BaseDir, domain.Format(s.Paths.Superrepo, cfg.Values()))

	values = cfg.Values()
	cfg.Executables = make(map[string]string, len(s.Executables))
	for name, path := range s.Executables {
		cfg.Executables[name] = domain.Format(path, values)
	}
	return cfg
}

func absPath(base, p string) string {
	if p == "" {
		return ""
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p)
}

// resolveTools looks up every required tool and replaces its executable
// entry with the resolved path.
func (l *Loader) resolveTools(cfg *domain.Config) error {
	for _, tool := range cfg.RequiredTools {
		path, err := l.lookPath(cfg.Executable(tool))
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrToolNotFound, tool), "tool", tool),
				"executable", cfg.Executable(tool))
		}
		cfg.Executables[tool] = path
	}
	return nil
}
