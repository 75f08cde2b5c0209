// Package scheduler implements the sequential unit build loop.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// UnitResult is the outcome of one unit in a run or a plan.
type UnitResult struct {
	Name   string
	State  domain.UnitState
	Build  bool
	Reason string
	Err    error
}

// Report lists the outcome of every unit that was looked at, in run order.
type Report struct {
	Units []UnitResult
}

// Names returns the units that reached state.
func (r *Report) Names(state domain.UnitState) []string {
	var names []string
	for _, u := range r.Units {
		if u.State == state {
			names = append(names, u.Name)
		}
	}
	return names
}

// Scheduler walks units in their declared order, deciding and building each
// one. The first failure halts the run.
type Scheduler struct {
	decider   ports.RebuildDecider
	builder   ports.UnitBuilder
	store     ports.ManifestStore
	telemetry ports.Telemetry
	logger    ports.Logger

	mu         sync.RWMutex
	unitStatus map[string]domain.UnitState
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	decider ports.RebuildDecider,
	builder ports.UnitBuilder,
	store ports.ManifestStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		decider:    decider,
		builder:    builder,
		store:      store,
		telemetry:  telemetry,
		logger:     logger,
		unitStatus: make(map[string]domain.UnitState),
	}
}

// Status returns the current state of the named unit.
func (s *Scheduler) Status(name string) domain.UnitState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unitStatus[name]
}

func (s *Scheduler) updateStatus(name string, state domain.UnitState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitStatus[name] = state
}

func (s *Scheduler) initStatuses(units []domain.BuildUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.unitStatus)
	for i := range units {
		s.unitStatus[units[i].Name] = domain.StatePending
	}
}

// Run decides and builds units in order. It returns the report of every unit
// looked at so far and, on the first failure, an error joined with
// domain.ErrBuildExecutionFailed. Units after the failing one stay pending.
func (s *Scheduler) Run(ctx context.Context, units []domain.BuildUnit, req domain.RebuildRequest) (*Report, error) {
	s.initStatuses(units)
	s.warnForwardDependencies(units)

	report := &Report{}
	for i := range units {
		unit := &units[i]
		res, err := s.runUnit(ctx, unit, req)
		report.Units = append(report.Units, res)
		if err != nil {
			s.logger.Error(err)
			return report, errors.Join(domain.ErrBuildExecutionFailed, err)
		}
	}
	return report, nil
}

func (s *Scheduler) runUnit(ctx context.Context, unit *domain.BuildUnit, req domain.RebuildRequest) (UnitResult, error) {
	ctx, vertex := s.telemetry.Record(ctx, unit.Name)
	res := UnitResult{Name: unit.Name}

	fail := func(err error) (UnitResult, error) {
		s.updateStatus(unit.Name, domain.StateFailed)
		vertex.Complete(err)
		res.State = domain.StateFailed
		res.Err = err
		return res, err
	}

	s.updateStatus(unit.Name, domain.StateEvaluating)
	manifest, err := s.store.Get(unit)
	if err != nil {
		return fail(zerr.With(zerr.Wrap(err, "failed to load manifest"), "unit", unit.Name))
	}

	decision, err := s.decider.ShouldBuild(ctx, unit, manifest, req)
	if err != nil {
		return fail(err)
	}
	res.Build = decision.Build
	res.Reason = decision.Reason

	if !decision.Build {
		s.logger.Info("up to date: " + unit.Name)
		s.updateStatus(unit.Name, domain.StateSkipped)
		vertex.Cached()
		vertex.Complete(nil)
		res.State = domain.StateSkipped
		return res, nil
	}

	s.logger.Info("building " + unit.Name + " (" + decision.Reason + ")")
	err = s.builder.TryBuild(ctx, unit, decision.Snapshot, func(state domain.UnitState) {
		s.updateStatus(unit.Name, state)
	})
	if err != nil {
		return fail(err)
	}

	s.updateStatus(unit.Name, domain.StateRecorded)
	vertex.Complete(nil)
	res.State = domain.StateRecorded
	return res, nil
}

// Plan decides every unit without building anything or capturing snapshots.
func (s *Scheduler) Plan(ctx context.Context, units []domain.BuildUnit, req domain.RebuildRequest) (*Report, error) {
	req.SnapshotUnits = nil

	report := &Report{}
	for i := range units {
		unit := &units[i]
		manifest, err := s.store.Get(unit)
		if err != nil {
			return report, zerr.With(zerr.Wrap(err, "failed to load manifest"), "unit", unit.Name)
		}
		decision, err := s.decider.ShouldBuild(ctx, unit, manifest, req)
		if err != nil {
			return report, err
		}

		state := domain.StateSkipped
		if decision.Build {
			state = domain.StatePending
		}
		report.Units = append(report.Units, UnitResult{
			Name:   unit.Name,
			State:  state,
			Build:  decision.Build,
			Reason: decision.Reason,
		})
	}
	return report, nil
}

// warnForwardDependencies logs units that depend on a unit built after them.
// The declared order is kept as is.
func (s *Scheduler) warnForwardDependencies(units []domain.BuildUnit) {
	position := make(map[string]int, len(units))
	for i := range units {
		position[units[i].Name] = i
	}
	for i := range units {
		for _, dep := range units[i].DependsOn {
			if p, ok := position[dep]; ok && p > i {
				s.logger.Warn(units[i].Name + " depends on " + dep + ", which is built later")
			}
		}
	}
}
