package domain

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Manifest is the persisted record of a unit's last verified build.
type Manifest struct {
	Unit string `json:"unit"`
	// Configuration is the unit's build configuration at the time of the build.
	Configuration BuildConfig `json:"configuration"`
	Fingerprint   string      `json:"fingerprint"`
	// FileTimestamps maps expected outputs, relative to the working directory in
	// forward-slash form, to their modification time in Unix nanoseconds.
	FileTimestamps map[string]int64 `json:"manifest"`
	// DiscoveredFiles lists files that appeared in the project tree during a
	// snapshot build, relative to the project root.
	DiscoveredFiles []string  `json:"newfiles"`
	RecordedAt      time.Time `json:"recorded_at,omitzero"`
}

// Fingerprint returns a stable hash of a build configuration.
func Fingerprint(cfg BuildConfig) string {
	// encoding/json sorts map keys, so the encoding is deterministic.
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// ManifestKey converts an expected output into its manifest key.
// Paths outside the working directory keep their relative form with ".." segments.
func ManifestKey(workingDir, output string) string {
	rel, err := filepath.Rel(workingDir, output)
	if err != nil {
		return filepath.ToSlash(output)
	}
	return filepath.ToSlash(rel)
}
