package backend

import (
	"context"
	"os"
	"strings"
	"time"

	ufs "go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultInstallAttempts = 15
	defaultInstallInterval = time.Second
)

// Installer runs an external installer and waits for the files it produces.
type Installer struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewInstaller creates a new Installer backend.
func NewInstaller(runner ports.CommandRunner, logger ports.Logger) *Installer {
	return &Installer{runner: runner, logger: logger}
}

// Configure applies the unit's line patches.
func (i *Installer) Configure(_ context.Context, unit *domain.BuildUnit) error {
	return ufs.ApplyLinePatches(unit)
}

// Build runs the installer, then polls for its files. The installer may still
// be writing after the files appear, so one more interval is waited before
// returning.
func (i *Installer) Build(ctx context.Context, unit *domain.BuildUnit, _ string) error {
	ic := unit.Config.Installer
	if ic == nil || len(ic.Command) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "installer backend without a command"), "unit", unit.Name)
	}

	attempts := ic.Attempts
	if attempts <= 0 {
		attempts = defaultInstallAttempts
	}
	interval := defaultInstallInterval
	if ic.IntervalMillis > 0 {
		interval = time.Duration(ic.IntervalMillis) * time.Millisecond
	}

	i.logger.Warn("running external installer for " + unit.Name + ", it may ask for elevation")
	if err := run(ctx, i.runner, unit, ic.Command, nil); err != nil {
		return err
	}

	for range attempts {
		if allExist(ic.WaitFor) {
			time.Sleep(interval)
			return nil
		}
		time.Sleep(interval)
	}
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrInstallTimeout, unit.Name),
		"unit", unit.Name), "waited_for", strings.Join(ic.WaitFor, ", "))
}

func allExist(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}
