// Package app implements the application layer for unibuild.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/unibuild/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// QtUnit is the unit reconfigured by RunOptions.ReconfigureQt.
const QtUnit = "qt5"

// RunOptions holds the command-line rebuild intent.
type RunOptions struct {
	RebuildAll    bool
	Rebuild       []string
	Snapshot      []string
	ReconfigureQt bool
	ForceDownload bool
}

// Request converts the options into the run's rebuild request. Reconfiguring
// Qt also forces it to build, since the clean only happens on configure.
func (o RunOptions) Request() domain.RebuildRequest {
	req := domain.RebuildRequest{
		RebuildAll:    o.RebuildAll,
		Forced:        domain.NewNameSet(o.Rebuild...),
		SnapshotUnits: domain.NewNameSet(o.Snapshot...),
		ForceDownload: o.ForceDownload,
	}
	if o.ReconfigureQt {
		req.Reconfigure = domain.NewNameSet(QtUnit)
		req.Forced[QtUnit] = struct{}{}
	}
	return req
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fetcher      ports.SourceFetcher
	store        ports.ManifestStore
	scheduler    *scheduler.Scheduler
	telemetry    ports.Telemetry
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fetcher ports.SourceFetcher,
	store ports.ManifestStore,
	sched *scheduler.Scheduler,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		fetcher:      fetcher,
		store:        store,
		scheduler:    sched,
		telemetry:    telemetry,
		logger:       logger,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer that plans and output lists are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run loads the workspace, retrieves every unit's sources in order and builds
// what is out of date.
func (a *App) Run(ctx context.Context, opts RunOptions) (err error) {
	ctx, ws, req, err := a.load(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.telemetry.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close telemetry")
		}
	}()

	units, err := a.fetchSources(ctx, ws, req.ForceDownload)
	if err != nil {
		return err
	}

	report, err := a.scheduler.Run(ctx, units, req)
	if report != nil {
		a.logger.Info("built " + strconv.Itoa(len(report.Names(domain.StateRecorded))) +
			", up to date " + strconv.Itoa(len(report.Names(domain.StateSkipped))))
	}
	return err
}

// Plan prints what a run with opts would build, without fetching or building.
func (a *App) Plan(ctx context.Context, opts RunOptions) error {
	ctx, ws, req, err := a.load(ctx, opts)
	if err != nil {
		return err
	}

	report, err := a.scheduler.Plan(ctx, localUnits(ws), req)
	if err != nil {
		return err
	}
	return renderPlan(a.out, report)
}

// Outputs prints the files discovered by the named unit's last snapshot
// build as a units.yml override.
func (a *App) Outputs(ctx context.Context, name string) error {
	ctx, ws, _, err := a.load(ctx, RunOptions{})
	if err != nil {
		return err
	}
	if _, err := ws.Unit(name); err != nil {
		return err
	}

	var unit *domain.BuildUnit
	units := localUnits(ws)
	for i := range units {
		if units[i].Name == name {
			unit = &units[i]
		}
	}

	m, err := a.store.Get(unit)
	if err != nil {
		return err
	}
	if m == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoManifest, name), "unit", name)
	}
	return renderOutputs(a.out, domain.ConfigFromContext(ctx), unit, m.DiscoveredFiles)
}

func (a *App) load(ctx context.Context, opts RunOptions) (context.Context, *domain.Workspace, domain.RebuildRequest, error) {
	req := opts.Request()

	ws, err := a.configLoader.Load(".")
	if err != nil {
		return ctx, nil, req, zerr.Wrap(err, "failed to load configuration")
	}
	if err := ws.Validate(req.Names()...); err != nil {
		return ctx, nil, req, err
	}

	ctx = domain.ContextWithConfig(ctx, ws.Config)
	ctx = domain.ContextWithRequest(ctx, req)
	return ctx, ws, req, nil
}

// fetchSources retrieves each unit's sources and resolves the {source}
// placeholder of its definition. The first failure stops the run.
func (a *App) fetchSources(ctx context.Context, ws *domain.Workspace, force bool) ([]domain.BuildUnit, error) {
	units := make([]domain.BuildUnit, 0, len(ws.Units))
	for _, unit := range ws.Units {
		if unit.Source == nil {
			units = append(units, unit)
			continue
		}

		vctx, vertex := a.telemetry.Record(ctx, "fetch "+unit.Name)
		path, err := a.fetcher.FetchOrUpdate(vctx, unit.Name, *unit.Source, ports.FetchOptions{Force: force})
		vertex.Complete(err)
		if err != nil {
			a.logger.Error(err)
			return nil, errors.Join(domain.ErrBuildExecutionFailed, err)
		}
		units = append(units, unit.Resolve(map[string]string{"source": path}))
	}
	return units, nil
}

// localUnits resolves units against sources already on disk. Sources that
// are not there yet resolve to their destination.
func localUnits(ws *domain.Workspace) []domain.BuildUnit {
	units := make([]domain.BuildUnit, 0, len(ws.Units))
	for _, unit := range ws.Units {
		if unit.Source == nil {
			units = append(units, unit)
			continue
		}
		path, err := unit.Source.LocalPath()
		if err != nil {
			path = unit.Source.Destination
		}
		units = append(units, unit.Resolve(map[string]string{"source": path}))
	}
	return units
}
