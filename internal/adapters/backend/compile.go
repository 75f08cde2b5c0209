package backend

import (
	"context"
	"path/filepath"
	"strings"

	ufs "go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
)

// Compile compiles a fixed list of C sources and archives them into a static library.
type Compile struct {
	runner ports.CommandRunner
}

// NewCompile creates a new Compile backend.
func NewCompile(runner ports.CommandRunner) *Compile {
	return &Compile{runner: runner}
}

// Configure applies the unit's line patches and runs its pre steps, such as
// table generators.
func (c *Compile) Configure(ctx context.Context, unit *domain.BuildUnit) error {
	if err := ufs.ApplyLinePatches(unit); err != nil {
		return err
	}
	if unit.Config.Compile == nil {
		return nil
	}
	return runAll(ctx, c.runner, unit, unit.Config.Compile.Pre, nil)
}

// Build compiles each source into an object file, then archives the objects
// into the configured output.
func (c *Compile) Build(ctx context.Context, unit *domain.BuildUnit, _ string) error {
	cc := unit.Config.Compile
	if cc == nil {
		return nil
	}

	objects := make([]string, 0, len(cc.Sources))
	for _, src := range cc.Sources {
		obj := objectName(src)
		args := append(append([]string(nil), cc.Compiler...), "/c", src, "/Fo"+obj)
		if err := run(ctx, c.runner, unit, args, nil); err != nil {
			return err
		}
		objects = append(objects, obj)
	}

	args := append(append([]string(nil), cc.Archiver...), "/OUT:"+cc.Output)
	args = append(args, objects...)
	return run(ctx, c.runner, unit, args, nil)
}

func objectName(src string) string {
	base := filepath.Base(src)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".obj"
}
