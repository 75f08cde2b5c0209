package domain

import "path/filepath"

const (
	// StateDirName is the per-unit directory holding persisted build state.
	StateDirName = ".unibuild"

	// ManifestSuffix is appended to a unit name to form its manifest file name.
	ManifestSuffix = ".manifest.json"

	// ConfigRecordFile stores the fingerprint of the last configure invocation of a script unit.
	ConfigRecordFile = ".config_cmd"

	// BuildFileName is the project configuration file.
	BuildFileName = "build.yml"

	// UserConfigFileName holds per-user overrides layered on top of BuildFileName.
	UserConfigFileName = "user-config.yml"

	// UnitsFileName holds unit overrides and additions.
	UnitsFileName = "units.yml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ManifestPath returns the manifest location for a unit whose build directory is buildDir.
func ManifestPath(buildDir, unitName string) string {
	return filepath.Join(buildDir, StateDirName, unitName+ManifestSuffix)
}
