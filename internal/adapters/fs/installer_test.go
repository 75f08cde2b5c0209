package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newInstaller(t *testing.T) *fs.Installer {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return fs.NewInstaller(log)
}

func TestInstaller_CopyFilesAndTrees(t *testing.T) {
	build := t.TempDir()
	install := t.TempDir()

	writeFile(t, filepath.Join(build, "bin", "ncc.exe"), "exe")
	writeFile(t, filepath.Join(build, "bin", "ncc.pdb"), "pdb")
	writeFile(t, filepath.Join(build, "bin", "plugins", "p.dll"), "dll")
	writeFile(t, filepath.Join(build, "bin", "plugins", "p.xml"), "xml")
	writeFile(t, filepath.Join(build, "include", "spdlog", "spdlog.h"), "h")

	unit := &domain.BuildUnit{
		Name:             "ncc",
		WorkingDirectory: build,
		Config: domain.BuildConfig{
			Install: []domain.CopyRule{
				{Pattern: "bin/*", Destination: filepath.Join(install, "NCC"), Exclude: []string{".pdb", ".xml"}},
				{Pattern: "include/spdlog", Destination: filepath.Join(install, "include")},
			},
		},
	}

	require.NoError(t, newInstaller(t).Install(unit))

	assert.FileExists(t, filepath.Join(install, "NCC", "ncc.exe"))
	assert.NoFileExists(t, filepath.Join(install, "NCC", "ncc.pdb"))
	assert.FileExists(t, filepath.Join(install, "NCC", "plugins", "p.dll"))
	assert.NoFileExists(t, filepath.Join(install, "NCC", "plugins", "p.xml"))
	assert.FileExists(t, filepath.Join(install, "include", "spdlog", "spdlog.h"))
}

func TestInstaller_PatternMatchesNothing(t *testing.T) {
	unit := &domain.BuildUnit{
		Name:             "x",
		WorkingDirectory: t.TempDir(),
		Config: domain.BuildConfig{
			Install: []domain.CopyRule{{Pattern: "nothing/*.dll", Destination: t.TempDir()}},
		},
	}

	err := newInstaller(t).Install(unit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched nothing")
}

func TestInstaller_BuildDirectoryIsBase(t *testing.T) {
	work := t.TempDir()
	build := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(build, "out.lib"), "lib")

	unit := &domain.BuildUnit{
		Name:             "udis86",
		WorkingDirectory: work,
		BuildDirectory:   build,
		Config: domain.BuildConfig{
			Install: []domain.CopyRule{{Pattern: "*.lib", Destination: dest}},
		},
	}

	require.NoError(t, newInstaller(t).Install(unit))
	assert.FileExists(t, filepath.Join(dest, "out.lib"))
}

func TestInstaller_LeavesLinePatchesToConfigure(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "qmake.conf")
	writeFile(t, conf, "LOAD = x\n")

	unit := &domain.BuildUnit{
		Name:             "qt5",
		WorkingDirectory: dir,
		Config: domain.BuildConfig{
			AppendLines: []domain.AppendLines{{File: "qmake.conf", Lines: []string{"QMAKE_CXXFLAGS += /MP"}}},
		},
	}
	require.NoError(t, newInstaller(t).Install(unit))

	data, err := os.ReadFile(conf)
	require.NoError(t, err)
	assert.Equal(t, "LOAD = x\n", string(data))
}
