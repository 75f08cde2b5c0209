package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	ufs "go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Script runs a unit's declared configure and build command lists.
type Script struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewScript creates a new Script backend.
func NewScript(runner ports.CommandRunner, logger ports.Logger) *Script {
	return &Script{runner: runner, logger: logger}
}

// Configure runs the prepare steps, the clean steps when needed, the unit's
// line patches and then the configure steps. Clean steps run when the
// recorded configure steps changed since the last run or a reconfigure was
// requested.
func (s *Script) Configure(ctx context.Context, unit *domain.BuildUnit) error {
	sc := unit.Config.Script
	if sc == nil {
		return nil
	}

	s.bestEffort(ctx, unit, sc.Prepare, sc.Env)

	reconf := domain.RequestFromContext(ctx).Reconfigure.Has(unit.Name)
	if reconf {
		s.logger.Info("reconfigure requested, cleaning " + unit.Name)
	}

	recordPath := filepath.Join(unit.WorkingDirectory, domain.ConfigRecordFile)
	var record string
	if sc.RecordConfigure {
		record = configureRecord(sc.Configure)
		stored, err := readRecord(recordPath)
		if err != nil {
			return err
		}
		if !reconf && stored != "" && stored != record {
			s.logger.Info("build configuration changed, cleaning " + unit.Name)
			reconf = true
		}
	}

	if reconf {
		s.bestEffort(ctx, unit, sc.Clean, sc.Env)
	}

	if err := ufs.ApplyLinePatches(unit); err != nil {
		return err
	}

	if err := runAll(ctx, s.runner, unit, sc.Configure, sc.Env); err != nil {
		return err
	}

	if sc.RecordConfigure {
		if err := ufs.WriteFileAtomic(recordPath, []byte(record)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write configure record"), "path", recordPath)
		}
	}
	return nil
}

// Build runs the build steps. The target is not used by scripts.
func (s *Script) Build(ctx context.Context, unit *domain.BuildUnit, _ string) error {
	sc := unit.Config.Script
	if sc == nil {
		return nil
	}
	return runAll(ctx, s.runner, unit, sc.Build, sc.Env)
}

// bestEffort runs non-critical steps. A step that cannot even start is
// logged and skipped.
func (s *Script) bestEffort(ctx context.Context, unit *domain.BuildUnit, cmds [][]string, env map[string]string) {
	for _, args := range cmds {
		cmd := domain.Command{Args: args, Dir: unit.WorkingDirectory, Env: env}
		if _, err := s.runner.Run(ctx, cmd); err != nil {
			s.logger.Warn("step failed, continuing: " + strings.Join(args, " ") + ": " + err.Error())
		}
	}
}

func configureRecord(cmds [][]string) string {
	data, err := json.Marshal(cmds)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

func readRecord(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside the unit's working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read configure record"), "path", path)
	}
	return strings.TrimSpace(string(data)), nil
}
