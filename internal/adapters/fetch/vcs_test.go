package fetch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/fetch"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports"
	"go.trai.ch/unibuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func cmd(dir string, args ...string) domain.Command {
	return domain.Command{Args: args, Dir: dir, Critical: true}
}

func TestFetch_GitClone(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dest := filepath.Join(t.TempDir(), "super", "uibase")

	runner.EXPECT().Run(gomock.Any(), cmd("",
		"git", "clone", "--origin", "origin", "--branch", "new_vfs_library",
		"https://github.com/Viomi/modorganizer-uibase", dest,
	)).Return(domain.CommandResult{}, nil)

	f := fetch.NewFetcher(runner, quietLogger(ctrl))
	path, err := f.FetchOrUpdate(context.Background(), "uibase", domain.SourceSpec{
		Kind:        domain.SourceGit,
		URI:         "https://github.com/Viomi/modorganizer-uibase",
		Destination: dest,
		Branch:      "new_vfs_library",
	}, ports.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, dest, path)
	assert.DirExists(t, filepath.Dir(dest))
}

func TestFetch_GitClonePinnedCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dest := filepath.Join(t.TempDir(), "asmjit")

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), cmd("", "git", "clone", "--origin", "origin", "https://example.com/asmjit.git", dest)).
			Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "git", "checkout", "abc123")).
			Return(domain.CommandResult{}, nil),
	)

	f := fetch.NewFetcher(runner, quietLogger(ctrl))
	_, err := f.FetchOrUpdate(context.Background(), "asmjit", domain.SourceSpec{
		Kind: domain.SourceGit, URI: "https://example.com/asmjit.git", Destination: dest, Commit: "abc123",
	}, ports.FetchOptions{})
	require.NoError(t, err)
}

func TestFetch_GitExistingIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	dest := t.TempDir()

	f := fetch.NewFetcher(mocks.NewMockCommandRunner(ctrl), mocks.NewMockLogger(ctrl))
	path, err := f.FetchOrUpdate(context.Background(), "esptk", domain.SourceSpec{
		Kind: domain.SourceGit, URI: "https://example.com/esptk", Destination: dest,
	}, ports.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, dest, path)
}

func TestFetch_GitForceUpdatesWithSubmodules(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dest := t.TempDir()

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "git", "fetch", "--tags", "origin")).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "git", "checkout", "5.5")).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "git", "reset", "--hard", "origin/5.5")).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "git", "submodule", "foreach", "--recursive", "git clean -dfx")).
			Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "git", "submodule", "update", "--init", "--recursive", "--remote")).
			Return(domain.CommandResult{}, nil),
	)

	f := fetch.NewFetcher(runner, quietLogger(ctrl))
	_, err := f.FetchOrUpdate(context.Background(), "qt5", domain.SourceSpec{
		Kind:             domain.SourceGit,
		URI:              "https://code.qt.io/qt/qt5.git",
		Destination:      dest,
		Branch:           "5.5",
		Submodules:       true,
		SubmodulesRemote: true,
	}, ports.FetchOptions{Force: true})
	require.NoError(t, err)
}

func TestFetch_GitForceTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dest := t.TempDir()

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "/usr/bin/git", "fetch", "--tags", "upstream")).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "/usr/bin/git", "checkout", "tags/release-1.7.0")).Return(domain.CommandResult{}, nil),
	)

	ctx := domain.ContextWithConfig(context.Background(), &domain.Config{
		Executables: map[string]string{"git": "/usr/bin/git"},
	})
	f := fetch.NewFetcher(runner, quietLogger(ctrl))
	_, err := f.FetchOrUpdate(ctx, "googletest", domain.SourceSpec{
		Kind: domain.SourceGit, URI: "https://example.com/gt", Destination: dest, Remote: "upstream", Tag: "release-1.7.0",
	}, ports.FetchOptions{Force: true})
	require.NoError(t, err)
}

func TestFetch_OfflineSkipsForcedUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	dest := t.TempDir()
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("offline: not updating " + dest)

	ctx := domain.ContextWithConfig(context.Background(), &domain.Config{Offline: true})
	f := fetch.NewFetcher(mocks.NewMockCommandRunner(ctrl), log)
	_, err := f.FetchOrUpdate(ctx, "helper", domain.SourceSpec{
		Kind: domain.SourceGit, URI: "https://example.com/helper", Destination: dest,
	}, ports.FetchOptions{Force: true})
	require.NoError(t, err)
}

func TestFetch_HgCloneAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	parent := t.TempDir()
	dest := filepath.Join(parent, "sip")
	spec := domain.SourceSpec{Kind: domain.SourceHg, URI: "https://hg.example.com/sip", Destination: dest, Tag: "4.18"}

	runner.EXPECT().Run(gomock.Any(), cmd("", "hg", "clone", "--updaterev", "4.18", spec.URI, dest)).
		DoAndReturn(func(context.Context, domain.Command) (domain.CommandResult, error) {
			return domain.CommandResult{}, os.MkdirAll(dest, 0o750)
		})

	f := fetch.NewFetcher(runner, quietLogger(ctrl))
	_, err := f.FetchOrUpdate(context.Background(), "sip", spec, ports.FetchOptions{})
	require.NoError(t, err)

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "hg", "pull", "default")).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), cmd(dest, "hg", "update", "--clean", "4.18")).Return(domain.CommandResult{}, nil),
	)
	_, err = f.FetchOrUpdate(context.Background(), "sip", spec, ports.FetchOptions{Force: true})
	require.NoError(t, err)
}

func TestFetch_SubdirWithoutMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	dest := t.TempDir()

	f := fetch.NewFetcher(mocks.NewMockCommandRunner(ctrl), mocks.NewMockLogger(ctrl))
	_, err := f.FetchOrUpdate(context.Background(), "boost", domain.SourceSpec{
		Kind: domain.SourceGit, URI: "https://example.com/boost", Destination: dest, Subdir: "boost_*",
	}, ports.FetchOptions{})
	assert.ErrorIs(t, err, domain.ErrRetrievalFailed)
}
