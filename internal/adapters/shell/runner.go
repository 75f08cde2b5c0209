// Package shell provides the command runner adapter.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd, streaming each output line to the logger and to the
// telemetry vertex in ctx, if any, while capturing both streams.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	if len(cmd.Args) == 0 {
		return domain.CommandResult{}, nil
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // commands come from unit definitions
	c.Dir = cmd.Dir
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to open stdout")
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return domain.CommandResult{}, zerr.Wrap(err, "failed to open stderr")
	}

	line := strings.Join(cmd.Args, " ")
	r.logger.Info("$ " + line)

	if err := c.Start(); err != nil {
		return domain.CommandResult{ExitCode: -1}, zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", line)
	}

	var outBuf, errBuf bytes.Buffer
	var outSink, errSink io.Writer = &outBuf, &errBuf
	if v, ok := ports.VertexFromContext(ctx); ok {
		outSink = io.MultiWriter(&outBuf, v.Stdout())
		errSink = io.MultiWriter(&errBuf, v.Stderr())
	}

	var logMu sync.Mutex
	var g errgroup.Group
	g.Go(func() error { return pump(stdout, outSink, &logMu, r.logger.Info) })
	g.Go(func() error { return pump(stderr, errSink, &logMu, r.logger.Warn) })
	pumpErr := g.Wait()

	waitErr := c.Wait()
	res := domain.CommandResult{
		ExitCode: exitCode(waitErr),
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
	}

	if waitErr != nil {
		if cmd.Critical || res.ExitCode < 0 {
			return res, zerr.With(zerr.With(zerr.Wrap(waitErr, domain.ErrCommandFailed.Error()),
				"command", line), "exit_code", res.ExitCode)
		}
		r.logger.Warn("command exited with non-zero status, continuing: " + line)
		return res, nil
	}
	if pumpErr != nil {
		return res, zerr.Wrap(pumpErr, "failed to read command output")
	}
	return res, nil
}

// pump copies lines from src into sink and hands each to log. Lines have no
// length limit, so the pipe is always drained until the child closes it.
func pump(src io.Reader, sink io.Writer, mu *sync.Mutex, log func(string)) error {
	rd := bufio.NewReader(src)
	for {
		text, err := rd.ReadString('\n')
		if text != "" {
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			_, _ = io.WriteString(sink, text+"\n")
			mu.Lock()
			log(text)
			mu.Unlock()
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// resolveEnvironment overlays overrides on the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
