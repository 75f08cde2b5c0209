// Package decision implements the rebuild decision engine.
package decision

import (
	"context"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reasons reported with a decision.
const (
	ReasonRebuildAll    = "rebuild-all"
	ReasonForced        = "forced"
	ReasonRefetched     = "force-download"
	ReasonNoWorkdir     = "working-directory-missing"
	ReasonNoManifest    = "no-manifest"
	ReasonOutputMissing = "output-missing"
	ReasonOutputUnknown = "output-unrecorded"
	ReasonOutputChanged = "output-changed"
	ReasonConfigChanged = "config-changed"
	ReasonUpToDate      = "up-to-date"
)

// Decider implements ports.RebuildDecider by comparing expected outputs with
// the timestamps recorded in the unit's manifest.
type Decider struct {
	inspector   ports.OutputInspector
	snapshotter ports.Snapshotter
}

// NewDecider creates a new Decider.
func NewDecider(inspector ports.OutputInspector, snapshotter ports.Snapshotter) *Decider {
	return &Decider{inspector: inspector, snapshotter: snapshotter}
}

// ShouldBuild decides whether unit must be built. The first matching rule wins.
// A unit with no expected outputs, an existing working directory and a
// manifest is always skipped.
func (d *Decider) ShouldBuild(
	ctx context.Context,
	unit *domain.BuildUnit,
	manifest *domain.Manifest,
	req domain.RebuildRequest,
) (ports.Decision, error) {
	if req.RebuildAll {
		return build(ReasonRebuildAll, nil), nil
	}

	var snapshot domain.FileSet
	if req.SnapshotUnits.Has(unit.Name) {
		root := domain.ConfigFromContext(ctx).SnapshotRoot(unit)
		set, err := d.snapshotter.CaptureBefore(root)
		if err != nil {
			return ports.Decision{}, zerr.With(zerr.Wrap(err, "failed to snapshot project"), "unit", unit.Name)
		}
		snapshot = set
	}

	if req.Forced.Has(unit.Name) {
		return build(ReasonForced, snapshot), nil
	}
	if req.ForceDownload && unit.Source != nil {
		return build(ReasonRefetched, snapshot), nil
	}
	if !d.inspector.DirExists(unit.WorkingDirectory) {
		return build(ReasonNoWorkdir, snapshot), nil
	}
	if manifest == nil {
		return build(ReasonNoManifest, snapshot), nil
	}

	for _, output := range unit.ExpectedOutputs {
		mtime, ok, err := d.inspector.ModTime(output)
		if err != nil {
			return ports.Decision{}, zerr.With(zerr.Wrap(err, "failed to inspect output"), "unit", unit.Name)
		}
		if !ok {
			return build(ReasonOutputMissing+": "+output, snapshot), nil
		}
		recorded, known := manifest.FileTimestamps[domain.ManifestKey(unit.WorkingDirectory, output)]
		if !known {
			return build(ReasonOutputUnknown+": "+output, snapshot), nil
		}
		if recorded != mtime {
			return build(ReasonOutputChanged+": "+output, snapshot), nil
		}
	}

	if domain.ConfigFromContext(ctx).DetectConfigChanges &&
		manifest.Fingerprint != domain.Fingerprint(unit.Config) {
		return build(ReasonConfigChanged, snapshot), nil
	}

	return ports.Decision{Reason: ReasonUpToDate, Snapshot: snapshot}, nil
}

func build(reason string, snapshot domain.FileSet) ports.Decision {
	return ports.Decision{Build: true, Reason: reason, Snapshot: snapshot}
}
