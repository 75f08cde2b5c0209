package domain

import (
	"maps"
	"path/filepath"
	"strings"
)

// UnitKind classifies a unit as a prerequisite library or a first-party project.
type UnitKind string

const (
	// KindPrerequisite marks third-party libraries built before any project.
	KindPrerequisite UnitKind = "prerequisite"
	// KindProject marks first-party sub-projects.
	KindProject UnitKind = "project"
)

// BackendKind selects the adapter that configures and builds a unit.
type BackendKind string

const (
	// BackendCMake drives a CMake configure and build.
	BackendCMake BackendKind = "cmake"
	// BackendScript runs declared configure and build command lists.
	BackendScript BackendKind = "script"
	// BackendCompile compiles a fixed set of sources into a static library.
	BackendCompile BackendKind = "compile"
	// BackendInstaller runs an external installer and waits for its files.
	BackendInstaller BackendKind = "installer"
	// BackendNone performs no build step; install rules do all the work.
	BackendNone BackendKind = "none"
)

// SourceKind selects how a unit's sources are retrieved.
type SourceKind string

const (
	// SourceGit clones or updates a git repository.
	SourceGit SourceKind = "git"
	// SourceHg clones or updates a mercurial repository.
	SourceHg SourceKind = "hg"
	// SourceHTTP downloads and extracts an archive.
	SourceHTTP SourceKind = "http"
)

// BuildUnit is a named buildable component. Units are built fresh from
// configuration on each run and are never persisted.
type BuildUnit struct {
	Name             string
	Kind             UnitKind
	WorkingDirectory string
	BuildDirectory   string
	ExpectedOutputs  []string
	Source           *SourceSpec
	Config           BuildConfig
	DependsOn        []string
}

// ManifestDirectory returns the directory the unit's manifest is stored under.
func (u *BuildUnit) ManifestDirectory() string {
	if u.BuildDirectory != "" {
		return u.BuildDirectory
	}
	return u.WorkingDirectory
}

// Resolve returns a copy of the unit with every path-like field formatted
// against values. Relative expected outputs are anchored at the working directory
// unless they still start with an unresolved placeholder.
func (u BuildUnit) Resolve(values map[string]string) BuildUnit {
	out := u
	out.WorkingDirectory = filepath.Clean(Format(u.WorkingDirectory, values))
	if u.BuildDirectory != "" {
		out.BuildDirectory = filepath.Clean(Format(u.BuildDirectory, values))
	}

	out.ExpectedOutputs = make([]string, len(u.ExpectedOutputs))
	for i, o := range u.ExpectedOutputs {
		p := Format(o, values)
		if !filepath.IsAbs(p) && !strings.HasPrefix(p, "{") {
			p = filepath.Join(out.WorkingDirectory, p)
		}
		out.ExpectedOutputs[i] = filepath.Clean(p)
	}

	out.Config = u.Config.resolve(values)
	return out
}

// SourceSpec describes where a unit's sources come from.
type SourceSpec struct {
	Kind             SourceKind `json:"kind"`
	URI              string     `json:"uri"`
	Destination      string     `json:"destination"`
	Subdir           string     `json:"subdir,omitzero"`
	Remote           string     `json:"remote,omitzero"`
	Branch           string     `json:"branch,omitzero"`
	Tag              string     `json:"tag,omitzero"`
	Commit           string     `json:"commit,omitzero"`
	Submodules       bool       `json:"submodules,omitzero"`
	SubmodulesRemote bool       `json:"submodules_remote,omitzero"`
	Filename         string     `json:"filename,omitzero"`
	DownloadOnly     bool       `json:"download_only,omitzero"`
}

// BuildConfig is the backend-specific configuration of a unit. Its JSON form
// is the configuration snapshot stored in the manifest.
type BuildConfig struct {
	Backend     BackendKind      `json:"backend"`
	Target      string           `json:"target,omitzero"`
	CMake       *CMakeConfig     `json:"cmake,omitempty"`
	Script      *ScriptConfig    `json:"script,omitempty"`
	Compile     *CompileConfig   `json:"compile,omitempty"`
	Installer   *InstallerConfig `json:"installer,omitempty"`
	Install     []CopyRule       `json:"install,omitempty"`
	AppendLines []AppendLines    `json:"append_lines,omitempty"`
	UserFile    *UserFile        `json:"user_file,omitempty"`
}

// CMakeConfig holds the generator and cache definitions for a CMake unit.
type CMakeConfig struct {
	Generator string            `json:"generator,omitzero"`
	Source    string            `json:"source,omitzero"`
	Defines   map[string]string `json:"defines,omitempty"`
}

// ScriptConfig holds the command lists of a script unit. Each command is an argv.
type ScriptConfig struct {
	Env map[string]string `json:"env,omitempty"`
	// Prepare steps run first and may fail without stopping the build.
	Prepare   [][]string `json:"prepare,omitempty"`
	Clean     [][]string `json:"clean,omitempty"`
	Configure [][]string `json:"configure,omitempty"`
	Build     [][]string `json:"build,omitempty"`
	// RecordConfigure stores a fingerprint of Configure so that a change forces Clean.
	RecordConfigure bool `json:"record_configure,omitzero"`
}

// CompileConfig describes a direct compile-and-archive build.
type CompileConfig struct {
	Pre      [][]string `json:"pre,omitempty"`
	Compiler []string   `json:"compiler"`
	Archiver []string   `json:"archiver"`
	Sources  []string   `json:"sources"`
	Output   string     `json:"output"`
}

// InstallerConfig describes an external installer and how to wait for it.
type InstallerConfig struct {
	Command  []string `json:"command"`
	WaitFor  []string `json:"wait_for,omitempty"`
	Attempts int      `json:"attempts,omitzero"`
	// IntervalMillis is the pause between polls and the final settle delay.
	IntervalMillis int `json:"interval_ms,omitzero"`
}

// CopyRule copies files matching Pattern, relative to the build directory, into Destination.
// Files whose names end in any Exclude suffix are skipped.
type CopyRule struct {
	Pattern     string   `json:"pattern"`
	Destination string   `json:"destination"`
	Exclude     []string `json:"exclude,omitempty"`
}

// AppendLines appends each missing line to File before the unit is configured.
type AppendLines struct {
	File  string   `json:"file"`
	Lines []string `json:"lines"`
}

// UserFile is a template written next to the build before configuring.
type UserFile struct {
	Path     string `json:"path"`
	Template string `json:"template"`
}

func (c BuildConfig) resolve(values map[string]string) BuildConfig {
	out := c
	out.Target = Format(c.Target, values)

	if c.CMake != nil {
		cm := *c.CMake
		cm.Generator = Format(cm.Generator, values)
		cm.Source = Format(cm.Source, values)
		if c.CMake.Defines != nil {
			cm.Defines = make(map[string]string, len(c.CMake.Defines))
			for k, v := range c.CMake.Defines {
				cm.Defines[k] = Format(v, values)
			}
		}
		out.CMake = &cm
	}

	if c.Script != nil {
		sc := *c.Script
		sc.Env = maps.Clone(c.Script.Env)
		for k, v := range sc.Env {
			sc.Env[k] = Format(v, values)
		}
		sc.Prepare = formatCommands(c.Script.Prepare, values)
		sc.Clean = formatCommands(c.Script.Clean, values)
		sc.Configure = formatCommands(c.Script.Configure, values)
		sc.Build = formatCommands(c.Script.Build, values)
		out.Script = &sc
	}

	if c.Compile != nil {
		cc := *c.Compile
		cc.Pre = formatCommands(c.Compile.Pre, values)
		cc.Compiler = FormatAll(c.Compile.Compiler, values)
		cc.Archiver = FormatAll(c.Compile.Archiver, values)
		cc.Sources = FormatAll(c.Compile.Sources, values)
		cc.Output = Format(c.Compile.Output, values)
		out.Compile = &cc
	}

	if c.Installer != nil {
		ic := *c.Installer
		ic.Command = FormatAll(c.Installer.Command, values)
		ic.WaitFor = FormatAll(c.Installer.WaitFor, values)
		out.Installer = &ic
	}

	if c.Install != nil {
		out.Install = make([]CopyRule, len(c.Install))
		for i, r := range c.Install {
			out.Install[i] = CopyRule{
				Pattern:     Format(r.Pattern, values),
				Destination: Format(r.Destination, values),
				Exclude:     r.Exclude,
			}
		}
	}

	if c.AppendLines != nil {
		out.AppendLines = make([]AppendLines, len(c.AppendLines))
		for i, a := range c.AppendLines {
			out.AppendLines[i] = AppendLines{File: Format(a.File, values), Lines: a.Lines}
		}
	}

	if c.UserFile != nil {
		// The template body is formatted by the backend with its own values.
		out.UserFile = &UserFile{Path: Format(c.UserFile.Path, values), Template: c.UserFile.Template}
	}

	return out
}

func formatCommands(cmds [][]string, values map[string]string) [][]string {
	if cmds == nil {
		return nil
	}
	out := make([][]string, len(cmds))
	for i, c := range cmds {
		out[i] = FormatAll(c, values)
	}
	return out
}
