package config

// Settings represents the structure of build.yml and user-config.yml. The env
// tags name the UNIBUILD_ prefixed variables that override a loaded file.
type Settings struct {
	BaseDir             string            `yaml:"base_dir" env:"BASE_DIR"`
	Architecture        string            `yaml:"architecture" env:"ARCHITECTURE"`
	VCVersion           string            `yaml:"vc_version" env:"VC_VERSION"`
	BuildType           string            `yaml:"build_type" env:"BUILD_TYPE"`
	Generator           string            `yaml:"generator" env:"GENERATOR"`
	Offline             bool              `yaml:"offline" env:"OFFLINE"`
	Optimize            bool              `yaml:"optimize" env:"OPTIMIZE"`
	DetectConfigChanges bool              `yaml:"detect_config_changes" env:"DETECT_CONFIG_CHANGES"`
	JobCount            int               `yaml:"job_count" env:"JOB_COUNT"`
	Paths               PathsDTO          `yaml:"paths" envPrefix:"PATHS_"`
	Qt                  QtDTO             `yaml:"qt" envPrefix:"QT_"`
	Executables         map[string]string `yaml:"executables"`
	RequiredTools       []string          `yaml:"required_tools" env:"REQUIRED_TOOLS" envSeparator:","`
}

// PathsDTO represents the well-known directories.
type PathsDTO struct {
	Download  string `yaml:"download" env:"DOWNLOAD"`
	Build     string `yaml:"build" env:"BUILD"`
	Install   string `yaml:"install" env:"INSTALL"`
	Progress  string `yaml:"progress" env:"PROGRESS"`
	Superrepo string `yaml:"superrepo" env:"SUPERREPO"`
}

// QtDTO represents the Qt toolchain and IDE profile settings.
type QtDTO struct {
	Base          string `yaml:"base" env:"BASE"`
	Makespec      string `yaml:"makespec" env:"MAKESPEC"`
	EnvironmentID string `yaml:"environment_id" env:"ENVIRONMENT_ID"`
	ProfileName   string `yaml:"profile_name" env:"PROFILE_NAME"`
	ProfileID     string `yaml:"profile_id" env:"PROFILE_ID"`
}

// UnitDTO represents a unit definition in units.yml.
type UnitDTO struct {
	Name        string           `yaml:"name"`
	Enabled     *bool            `yaml:"enabled"`
	WorkingDir  string           `yaml:"working_dir"`
	BuildDir    string           `yaml:"build_dir"`
	Outputs     []string         `yaml:"outputs"`
	DependsOn   []string         `yaml:"depends_on"`
	Source      *SourceDTO       `yaml:"source"`
	Backend     string           `yaml:"backend"`
	Target      string           `yaml:"target"`
	CMake       *CMakeDTO        `yaml:"cmake"`
	Script      *ScriptDTO       `yaml:"script"`
	Compile     *CompileDTO      `yaml:"compile"`
	Installer   *InstallerDTO    `yaml:"installer"`
	Install     []CopyRuleDTO    `yaml:"install"`
	AppendLines []AppendLinesDTO `yaml:"append_lines"`
	UserFile    *UserFileDTO     `yaml:"user_file"`
}

// SourceDTO represents where a unit's sources come from.
type SourceDTO struct {
	Kind             string `yaml:"kind"`
	URI              string `yaml:"uri"`
	Destination      string `yaml:"destination"`
	Subdir           string `yaml:"subdir"`
	Remote           string `yaml:"remote"`
	Branch           string `yaml:"branch"`
	Tag              string `yaml:"tag"`
	Commit           string `yaml:"commit"`
	Submodules       bool   `yaml:"submodules"`
	SubmodulesRemote bool   `yaml:"submodules_remote"`
	Filename         string `yaml:"filename"`
	DownloadOnly     bool   `yaml:"download_only"`
}

// CMakeDTO represents the cmake backend settings.
type CMakeDTO struct {
	Generator string            `yaml:"generator"`
	Source    string            `yaml:"source"`
	Defines   map[string]string `yaml:"defines"`
}

// ScriptDTO represents the script backend settings.
type ScriptDTO struct {
	Env             map[string]string `yaml:"env"`
	Prepare         [][]string        `yaml:"prepare"`
	Clean           [][]string        `yaml:"clean"`
	Configure       [][]string        `yaml:"configure"`
	Build           [][]string        `yaml:"build"`
	RecordConfigure bool              `yaml:"record_configure"`
}

// CompileDTO represents the compile backend settings.
type CompileDTO struct {
	Pre      [][]string `yaml:"pre"`
	Compiler []string   `yaml:"compiler"`
	Archiver []string   `yaml:"archiver"`
	Sources  []string   `yaml:"sources"`
	Output   string     `yaml:"output"`
}

// InstallerDTO represents the installer backend settings.
type InstallerDTO struct {
	Command    []string `yaml:"command"`
	WaitFor    []string `yaml:"wait_for"`
	Attempts   int      `yaml:"attempts"`
	IntervalMS int      `yaml:"interval_ms"`
}

// CopyRuleDTO represents a manual install copy rule.
type CopyRuleDTO struct {
	Pattern     string   `yaml:"pattern"`
	Destination string   `yaml:"destination"`
	Exclude     []string `yaml:"exclude"`
}

// AppendLinesDTO represents a line-append patch.
type AppendLinesDTO struct {
	File  string   `yaml:"file"`
	Lines []string `yaml:"lines"`
}

// UserFileDTO represents a generated IDE user file.
type UserFileDTO struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template"`
}
