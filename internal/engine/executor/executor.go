// Package executor builds a single unit and records its manifest.
package executor

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.UnitBuilder.
type Executor struct {
	backends    ports.BackendResolver
	workdir     ports.WorkdirChanger
	installer   ports.Installer
	inspector   ports.OutputInspector
	snapshotter ports.Snapshotter
	store       ports.ManifestStore
	now         func() time.Time
}

// NewExecutor creates a new Executor.
func NewExecutor(
	backends ports.BackendResolver,
	workdir ports.WorkdirChanger,
	installer ports.Installer,
	inspector ports.OutputInspector,
	snapshotter ports.Snapshotter,
	store ports.ManifestStore,
) *Executor {
	return &Executor{
		backends:    backends,
		workdir:     workdir,
		installer:   installer,
		inspector:   inspector,
		snapshotter: snapshotter,
		store:       store,
		now:         time.Now,
	}
}

// TryBuild configures and builds unit, applies its install rules, verifies its
// expected outputs and persists the manifest. The manifest is written only
// when every step succeeded; any error leaves the previous one in place.
func (e *Executor) TryBuild(
	ctx context.Context,
	unit *domain.BuildUnit,
	snapshot domain.FileSet,
	observe ports.StateObserver,
) error {
	if observe == nil {
		observe = func(domain.UnitState) {}
	}

	observe(domain.StateBuilding)
	if err := e.build(ctx, unit); err != nil {
		return err
	}

	observe(domain.StateInstalling)
	if err := e.installer.Install(unit); err != nil {
		return errors.Join(domain.ErrInstallStepFailed, zerr.With(err, "unit", unit.Name))
	}

	observe(domain.StateVerifying)
	manifest, err := e.verify(ctx, unit, snapshot)
	if err != nil {
		return err
	}

	if err := e.store.Put(unit, manifest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to record manifest"), "unit", unit.Name)
	}
	observe(domain.StateRecorded)
	return nil
}

// build runs the unit's backend inside its working directory.
func (e *Executor) build(ctx context.Context, unit *domain.BuildUnit) (err error) {
	backend, err := e.backends.Backend(unit.Config.Backend)
	if err != nil {
		return errors.Join(domain.ErrBuildFailed, zerr.With(zerr.Wrap(err, "failed to prepare build"), "unit", unit.Name))
	}

	restore, err := e.workdir.Enter(unit.WorkingDirectory)
	if err != nil {
		return errors.Join(domain.ErrBuildFailed, zerr.With(zerr.Wrap(err, "failed to prepare build"), "unit", unit.Name))
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := backend.Configure(ctx, unit); err != nil {
		return errors.Join(domain.ErrBuildFailed, zerr.With(zerr.Wrap(err, "configure failed"), "unit", unit.Name))
	}
	if err := backend.Build(ctx, unit, unit.Config.Target); err != nil {
		return errors.Join(domain.ErrBuildFailed, zerr.With(zerr.Wrap(err, "build failed"), "unit", unit.Name))
	}
	return nil
}

// verify checks every expected output and assembles the manifest to persist.
func (e *Executor) verify(ctx context.Context, unit *domain.BuildUnit, snapshot domain.FileSet) (*domain.Manifest, error) {
	missing, err := e.inspector.Missing(unit.ExpectedOutputs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to verify outputs"), "unit", unit.Name)
	}
	if len(missing) > 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInstallationFailed, strings.Join(missing, ", ")),
			"unit", unit.Name), "missing", missing)
	}

	manifest := &domain.Manifest{
		Unit:           unit.Name,
		Configuration:  unit.Config,
		Fingerprint:    domain.Fingerprint(unit.Config),
		FileTimestamps: make(map[string]int64, len(unit.ExpectedOutputs)),
		RecordedAt:     e.now().UTC(),
	}
	for _, output := range unit.ExpectedOutputs {
		mtime, ok, err := e.inspector.ModTime(output)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to verify outputs"), "unit", unit.Name)
		}
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrInstallationFailed, output), "unit", unit.Name)
		}
		manifest.FileTimestamps[domain.ManifestKey(unit.WorkingDirectory, output)] = mtime
	}

	if snapshot == nil {
		// Files discovered by an earlier snapshot build stay on record. An
		// unreadable manifest is about to be replaced and carries nothing over.
		if prev, err := e.store.Get(unit); err == nil && prev != nil {
			manifest.DiscoveredFiles = prev.DiscoveredFiles
		}
		return manifest, nil
	}

	root := domain.ConfigFromContext(ctx).SnapshotRoot(unit)
	added, err := e.snapshotter.CaptureAfter(root, snapshot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to diff snapshot"), "unit", unit.Name)
	}
	manifest.DiscoveredFiles = added
	return manifest, nil
}
