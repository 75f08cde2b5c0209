package domain

import (
	"context"
	"strconv"
)

// Config is the typed, immutable configuration of one run. It is built once by
// the config loader and read by adapters from the context.
type Config struct {
	BaseDir      string
	Architecture string
	VCVersion    string
	BuildType    string
	Generator    string
	Offline      bool
	Optimize     bool
	JobCount     int
	// DetectConfigChanges makes a configuration fingerprint mismatch trigger a rebuild.
	DetectConfigChanges bool
	Paths               Paths
	Qt                  QtSettings
	Executables         map[string]string
	RequiredTools       []string
}

// QtSettings identify the Qt toolchain and the IDE profile written into
// generated project user files.
type QtSettings struct {
	Base          string
	Makespec      string
	EnvironmentID string
	ProfileName   string
	ProfileID     string
}

// Paths are the well-known directories of a workspace. All are absolute once loaded.
type Paths struct {
	Download string
	Build    string
	Install  string
	Progress string
	// Superrepo is the checkout root of first-party projects.
	Superrepo string
}

// ShortArch returns the short architecture name used in library paths.
func (c *Config) ShortArch() string {
	if c.Architecture == "x86" {
		return "x86"
	}
	return "x64"
}

// NBits returns the pointer width of the target architecture.
func (c *Config) NBits() int {
	if c.Architecture == "x86" {
		return 32
	}
	return 64
}

// Executable returns the configured path for a tool, or the tool name itself
// so that it is resolved from PATH.
func (c *Config) Executable(name string) string {
	if p, ok := c.Executables[name]; ok && p != "" {
		return p
	}
	return name
}

// JobCountOr returns the configured job count, or def when unset.
func (c *Config) JobCountOr(def int) int {
	if c.JobCount > 0 {
		return c.JobCount
	}
	return def
}

// SnapshotRoot returns the tree listed for snapshot builds of unit: the
// workspace base directory, or the unit's working directory without one.
func (c *Config) SnapshotRoot(unit *BuildUnit) string {
	if c.BaseDir != "" {
		return c.BaseDir
	}
	return unit.WorkingDirectory
}

// Values returns the placeholder table used to format unit definitions.
func (c *Config) Values() map[string]string {
	v := map[string]string{
		"base_dir":     c.BaseDir,
		"arch":         c.Architecture,
		"short_arch":   c.ShortArch(),
		"nbits":        strconv.Itoa(c.NBits()),
		"vc_version":   c.VCVersion,
		"build_type":   c.BuildType,
		"generator":    c.Generator,
		"job_count":    strconv.Itoa(c.JobCount),
		"download_dir": c.Paths.Download,
		"build_dir":    c.Paths.Build,
		"install_dir":  c.Paths.Install,
		"progress_dir": c.Paths.Progress,
		"superrepo":    c.Paths.Superrepo,
		"qt_base":      c.Qt.Base,
		"qt_makespec":  c.Qt.Makespec,
	}
	for name, path := range c.Executables {
		v["exe."+name] = path
	}
	return v
}

type configKey struct{}

// ContextWithConfig returns a context carrying cfg.
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the run configuration, or an empty one when none is set.
func ConfigFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	return &Config{}
}
