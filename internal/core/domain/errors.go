package domain

import "go.trai.ch/zerr"

var (
	// ErrUnitNotFound is returned when a requested unit name is not part of the unit list.
	ErrUnitNotFound = zerr.New("unit not found")

	// ErrDuplicateUnit is returned when two units share the same name.
	ErrDuplicateUnit = zerr.New("duplicate unit name")

	// ErrConfigInvalid is returned when the layered configuration cannot be parsed or is inconsistent.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrToolNotFound is returned when a required external tool cannot be resolved.
	ErrToolNotFound = zerr.New("required tool not found")

	// ErrUnknownBackend is returned when a unit declares a backend that is not registered.
	ErrUnknownBackend = zerr.New("unknown build backend")

	// ErrRetrievalFailed is returned when a unit's sources cannot be fetched or extracted.
	ErrRetrievalFailed = zerr.New("source retrieval failed")

	// ErrBuildFailed is returned when the backend fails to configure or build a unit.
	ErrBuildFailed = zerr.New("build failed")

	// ErrInstallStepFailed is returned when a manual install copy rule fails.
	ErrInstallStepFailed = zerr.New("install step failed")

	// ErrInstallationFailed is returned when expected outputs are missing after a build.
	ErrInstallationFailed = zerr.New("expected outputs missing after build")

	// ErrInstallTimeout is returned when an external installer produced nothing in time.
	ErrInstallTimeout = zerr.New("nothing was installed")

	// ErrBuildExecutionFailed is returned when the run is halted by a failing unit.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCommandFailed is returned when a critical external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrWorkdirChangeFailed is returned when the process cannot enter a unit's working directory.
	ErrWorkdirChangeFailed = zerr.New("failed to change working directory")

	// ErrSnapshotFailed is returned when a project tree listing cannot be taken.
	ErrSnapshotFailed = zerr.New("failed to capture file snapshot")

	// ErrManifestReadFailed is returned when a persisted manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestUnmarshalFailed is returned when a persisted manifest is malformed.
	ErrManifestUnmarshalFailed = zerr.New("failed to unmarshal manifest")

	// ErrManifestMarshalFailed is returned when a manifest cannot be serialized.
	ErrManifestMarshalFailed = zerr.New("failed to marshal manifest")

	// ErrManifestWriteFailed is returned when a manifest cannot be written atomically.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrNoManifest is returned when a unit's manifest is needed but was never recorded.
	ErrNoManifest = zerr.New("no manifest recorded")

	// ErrUnsupportedArchive is returned when a downloaded file has no known extractor.
	ErrUnsupportedArchive = zerr.New("unsupported archive format")

	// ErrMissingSourceURI is returned when a source declaration has no location.
	ErrMissingSourceURI = zerr.New("source has no uri")
)
