package backend_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/backend"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func qtUnit(dir string, configure ...string) *domain.BuildUnit {
	return &domain.BuildUnit{
		Name:             "qt5",
		WorkingDirectory: dir,
		Config: domain.BuildConfig{
			Backend: domain.BackendScript,
			Script: &domain.ScriptConfig{
				Env:             map[string]string{"QMAKESPEC": "win32-msvc2013"},
				Clean:           [][]string{{"git", "clean", "-dfx"}},
				Configure:       [][]string{configure},
				Build:           [][]string{{"jom", "-j", "8"}, {"nmake", "install"}},
				RecordConfigure: true,
			},
		},
	}
}

func TestScript_FirstConfigureWritesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	unit := qtUnit(dir, "configure.bat", "-opensource")

	runner.EXPECT().Run(gomock.Any(), domain.Command{
		Args: []string{"configure.bat", "-opensource"}, Dir: dir, Env: unit.Config.Script.Env, Critical: true,
	}).Return(domain.CommandResult{}, nil)

	require.NoError(t, backend.NewScript(runner, log).Configure(context.Background(), unit))

	data, err := os.ReadFile(filepath.Join(dir, ".config_cmd"))
	require.NoError(t, err)
	assert.NotEmpty(t, string(data))
}

func TestScript_UnchangedConfigureDoesNotClean(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	unit := qtUnit(dir, "configure.bat", "-opensource")
	s := backend.NewScript(runner, log)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{}, nil).Times(2)

	require.NoError(t, s.Configure(context.Background(), unit))
	require.NoError(t, s.Configure(context.Background(), unit))
}

func TestScript_ChangedConfigureCleans(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	s := backend.NewScript(runner, log)

	first := qtUnit(dir, "configure.bat", "-opensource")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{}, nil)
	require.NoError(t, s.Configure(context.Background(), first))
	before, err := os.ReadFile(filepath.Join(dir, ".config_cmd"))
	require.NoError(t, err)

	second := qtUnit(dir, "configure.bat", "-opensource", "-ssl")
	log.EXPECT().Info("build configuration changed, cleaning qt5")
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Args: []string{"git", "clean", "-dfx"}, Dir: dir, Env: second.Config.Script.Env,
		}).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Args: []string{"configure.bat", "-opensource", "-ssl"}, Dir: dir, Env: second.Config.Script.Env, Critical: true,
		}).Return(domain.CommandResult{}, nil),
	)
	require.NoError(t, s.Configure(context.Background(), second))

	after, err := os.ReadFile(filepath.Join(dir, ".config_cmd"))
	require.NoError(t, err)
	assert.NotEqual(t, string(before), string(after))
}

func TestScript_ReconfigureRequestCleans(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	unit := qtUnit(dir, "configure.bat")

	ctx := domain.ContextWithRequest(context.Background(), domain.RebuildRequest{
		Reconfigure: domain.NewNameSet("qt5"),
	})

	log.EXPECT().Info("reconfigure requested, cleaning qt5")
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Args: []string{"git", "clean", "-dfx"}, Dir: dir, Env: unit.Config.Script.Env,
		}).Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{}, nil),
	)

	require.NoError(t, backend.NewScript(runner, log).Configure(ctx, unit))
}

func TestScript_PatchesAfterPrepareAndCleanBeforeConfigure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	conf := filepath.Join(dir, "qtbase", "mkspecs", "win32-msvc2013", "qmake.conf")

	unit := qtUnit(dir, "configure.bat", "-platform", "win32-msvc2013")
	unit.Config.Script.Prepare = [][]string{{"perl", "init-repository"}}
	unit.Config.AppendLines = []domain.AppendLines{{
		File:  conf,
		Lines: []string{"QMAKE_CFLAGS -= -Zc:strictStrings", "QMAKE_CXXFLAGS -= -Zc:strictStrings"},
	}}
	env := unit.Config.Script.Env

	ctx := domain.ContextWithRequest(context.Background(), domain.RebuildRequest{
		Reconfigure: domain.NewNameSet("qt5"),
	})
	log.EXPECT().Info("reconfigure requested, cleaning qt5")

	readConf := func() string {
		data, err := os.ReadFile(conf)
		require.NoError(t, err)
		return string(data)
	}
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{Args: []string{"perl", "init-repository"}, Dir: dir, Env: env}).
			DoAndReturn(func(context.Context, domain.Command) (domain.CommandResult, error) {
				require.NoError(t, os.MkdirAll(filepath.Dir(conf), 0o750))
				require.NoError(t, os.WriteFile(conf, []byte("MAKEFILE_GENERATOR = MSVC.NET\n"), 0o600))
				return domain.CommandResult{}, nil
			}),
		runner.EXPECT().Run(gomock.Any(), domain.Command{Args: []string{"git", "clean", "-dfx"}, Dir: dir, Env: env}).
			DoAndReturn(func(context.Context, domain.Command) (domain.CommandResult, error) {
				assert.NotContains(t, readConf(), "strictStrings")
				return domain.CommandResult{}, nil
			}),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Args: []string{"configure.bat", "-platform", "win32-msvc2013"}, Dir: dir, Env: env, Critical: true,
		}).DoAndReturn(func(context.Context, domain.Command) (domain.CommandResult, error) {
			assert.Equal(t, "MAKEFILE_GENERATOR = MSVC.NET\n"+
				"QMAKE_CFLAGS -= -Zc:strictStrings\n"+
				"QMAKE_CXXFLAGS -= -Zc:strictStrings\n", readConf())
			return domain.CommandResult{}, nil
		}),
	)

	require.NoError(t, backend.NewScript(runner, log).Configure(ctx, unit))
}

func TestScript_FailingPrepareAndCleanContinue(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()
	unit := qtUnit(dir, "configure.bat")
	unit.Config.Script.Prepare = [][]string{{"perl", "init-repository"}}

	ctx := domain.ContextWithRequest(context.Background(), domain.RebuildRequest{
		Reconfigure: domain.NewNameSet("qt5"),
	})
	log.EXPECT().Info("reconfigure requested, cleaning qt5")
	log.EXPECT().Warn(gomock.Any()).Times(2)

	spawnErr := errors.New("executable file not found")
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{ExitCode: -1}, spawnErr),
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.CommandResult{ExitCode: -1}, spawnErr),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Args: []string{"configure.bat"}, Dir: dir, Env: unit.Config.Script.Env, Critical: true,
		}).Return(domain.CommandResult{}, nil),
	)

	require.NoError(t, backend.NewScript(runner, log).Configure(ctx, unit))
	assert.FileExists(t, filepath.Join(dir, ".config_cmd"))
}

func TestScript_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	dir := t.TempDir()
	unit := qtUnit(dir, "configure.bat")
	env := unit.Config.Script.Env

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{Args: []string{"jom", "-j", "8"}, Dir: dir, Env: env, Critical: true}).
			Return(domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{Args: []string{"nmake", "install"}, Dir: dir, Env: env, Critical: true}).
			Return(domain.CommandResult{}, nil),
	)

	require.NoError(t, backend.NewScript(runner, mocks.NewMockLogger(ctrl)).Build(context.Background(), unit, "install"))
}

func TestScript_NoScriptConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := backend.NewScript(mocks.NewMockCommandRunner(ctrl), mocks.NewMockLogger(ctrl))
	unit := &domain.BuildUnit{Name: "empty"}

	assert.NoError(t, s.Configure(context.Background(), unit))
	assert.NoError(t, s.Build(context.Background(), unit, ""))
}
