package backend

import (
	"context"
	"slices"

	ufs "go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// optimizeLinkFlags enables link-time code generation when the run asks for
// optimized binaries.
const optimizeLinkFlags = "/LTCG /INCREMENTAL:NO /OPT:REF /OPT:ICF"

// CMake drives a CMake configure and build in the unit's working directory.
type CMake struct {
	runner ports.CommandRunner
}

// NewCMake creates a new CMake backend.
func NewCMake(runner ports.CommandRunner) *CMake {
	return &CMake{runner: runner}
}

// Configure applies the unit's line patches, generates the build tree, then
// writes the unit's IDE user file if it declares one.
func (c *CMake) Configure(ctx context.Context, unit *domain.BuildUnit) error {
	if err := ufs.ApplyLinePatches(unit); err != nil {
		return err
	}

	cfg := domain.ConfigFromContext(ctx)
	cm := unit.Config.CMake
	if cm == nil {
		cm = &domain.CMakeConfig{}
	}

	generator := cm.Generator
	if generator == "" {
		generator = cfg.Generator
	}
	source := cm.Source
	if source == "" {
		source = "."
	}

	defines := make(map[string]string, len(cm.Defines)+1)
	for k, v := range cm.Defines {
		defines[k] = v
	}
	if cfg.Optimize {
		defines["OPTIMIZE_LINK_FLAGS"] = optimizeLinkFlags
	}

	args := []string{cfg.Executable("cmake")}
	if generator != "" {
		args = append(args, "-G", generator)
	}
	keys := make([]string, 0, len(defines))
	for k := range defines {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+defines[k])
	}
	args = append(args, source)

	if err := run(ctx, c.runner, unit, args, nil); err != nil {
		return err
	}

	if unit.Config.UserFile != nil {
		return writeUserFile(cfg, unit)
	}
	return nil
}

// Build builds target, or the default target when target is empty.
func (c *CMake) Build(ctx context.Context, unit *domain.BuildUnit, target string) error {
	cfg := domain.ConfigFromContext(ctx)
	args := []string{cfg.Executable("cmake"), "--build", "."}
	if target != "" {
		args = append(args, "--target", target)
	}
	return run(ctx, c.runner, unit, args, nil)
}

// writeUserFile renders the unit's user-file template. Tokens the run does
// not know are kept verbatim for the IDE to fill in.
func writeUserFile(cfg *domain.Config, unit *domain.BuildUnit) error {
	values := map[string]string{
		"build_dir":      unit.WorkingDirectory,
		"environment_id": cfg.Qt.EnvironmentID,
		"profile_name":   cfg.Qt.ProfileName,
		"profile_id":     cfg.Qt.ProfileID,
	}
	content := domain.Format(unit.Config.UserFile.Template, values)
	if err := ufs.WriteFileAtomic(unit.Config.UserFile.Path, []byte(content)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write user file"), "path", unit.Config.UserFile.Path)
	}
	return nil
}

// run executes a critical command in the unit's working directory.
func run(ctx context.Context, runner ports.CommandRunner, unit *domain.BuildUnit, args []string, env map[string]string) error {
	_, err := runner.Run(ctx, domain.Command{
		Args:     args,
		Dir:      unit.WorkingDirectory,
		Env:      env,
		Critical: true,
	})
	return err
}

// runAll executes each command in order and stops at the first failure.
func runAll(ctx context.Context, runner ports.CommandRunner, unit *domain.BuildUnit, cmds [][]string, env map[string]string) error {
	for _, args := range cmds {
		if err := run(ctx, runner, unit, args, env); err != nil {
			return err
		}
	}
	return nil
}
