package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/config"
	"go.trai.ch/unibuild/internal/core/domain"
	"go.trai.ch/unibuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fakeLookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func unitNames(ws *domain.Workspace) []string {
	names := make([]string, len(ws.Units))
	for i := range ws.Units {
		names[i] = ws.Units[i].Name
	}
	return names
}

func TestLoad_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	loader := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 4)
	ws, err := loader.Load(root)
	require.NoError(t, err)

	cfg := ws.Config
	assert.Equal(t, root, ws.Root)
	assert.Equal(t, root, cfg.BaseDir)
	assert.Equal(t, "x86_64", cfg.Architecture)
	assert.Equal(t, "x64", cfg.ShortArch())
	assert.Equal(t, "RelWithDebInfo", cfg.BuildType)
	assert.Equal(t, "NMake Makefiles", cfg.Generator)
	assert.Equal(t, 8, cfg.JobCount, "job count defaults to twice the CPU count")
	assert.False(t, cfg.DetectConfigChanges)
	assert.False(t, cfg.Offline)

	assert.Equal(t, filepath.Join(root, "downloads"), cfg.Paths.Download)
	assert.Equal(t, filepath.Join(root, "build"), cfg.Paths.Build)
	assert.Equal(t, filepath.Join(root, "install"), cfg.Paths.Install)
	assert.Equal(t, filepath.Join(root, "build", "modorganizer_super"), cfg.Paths.Superrepo)

	assert.Equal(t, "/usr/bin/cmake", cfg.Executable("cmake"))
	assert.Equal(t, "/usr/bin/git", cfg.Executable("git"))
	assert.Equal(t, "nmake", cfg.Executable("make"))
	assert.Equal(t, filepath.Join(root, "build", "jom", "jom.exe"), cfg.Executable("jom"))

	names := unitNames(ws)
	require.NotEmpty(t, names)
	assert.Equal(t, "zlib", names[0])
	assert.Equal(t, "modorganizer", names[len(names)-1])
	assert.Less(t, slices.Index(names, "ncc"), slices.Index(names, "usvfs"), "prerequisites come before projects")
	assert.Less(t, slices.Index(names, "usvfs"), slices.Index(names, "archive"))
}

func TestLoad_PrerequisiteResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	ws, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.NoError(t, err)

	zlib, err := ws.Unit("zlib")
	require.NoError(t, err)
	assert.Equal(t, domain.KindPrerequisite, zlib.Kind)
	assert.Equal(t, "{source}", zlib.WorkingDirectory, "the checkout path is filled in after fetching")
	require.NotNil(t, zlib.Source)
	assert.Equal(t, domain.SourceHTTP, zlib.Source.Kind)
	assert.Equal(t, filepath.Join(root, "build", "zlib"), zlib.Source.Destination)
	assert.Equal(t, "zlib-*", zlib.Source.Subdir)
	assert.Equal(t, []string{filepath.Join(root, "build", "zlib", "lib", "zlibstatic.lib")}, zlib.ExpectedOutputs)
	require.NotNil(t, zlib.Config.CMake)
	assert.Equal(t, "NMake Makefiles", zlib.Config.CMake.Generator)

	openssl, err := ws.Unit("openssl")
	require.NoError(t, err)
	assert.Equal(t, domain.BackendInstaller, openssl.Config.Backend)
	require.NotNil(t, openssl.Config.Installer)
	assert.Equal(t, 15, openssl.Config.Installer.Attempts)
	assert.Equal(t, filepath.Join(root, "build", "win64openssl"), openssl.WorkingDirectory)

	qt, err := ws.Unit("qt5")
	require.NoError(t, err)
	require.NotNil(t, qt.Config.Script)
	require.Len(t, qt.Config.Script.Prepare, 1)
	assert.Equal(t, "init-repository", qt.Config.Script.Prepare[0][1], "submodules are initialized before patching")
	require.Len(t, qt.Config.AppendLines, 1)
	assert.Equal(t, "{source}/qtbase/mkspecs/win32-msvc2013/qmake.conf", qt.Config.AppendLines[0].File)
}

func TestLoad_ProjectDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	ws, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.NoError(t, err)

	uibase, err := ws.Unit("uibase")
	require.NoError(t, err)
	assert.Equal(t, domain.KindProject, uibase.Kind)
	assert.Equal(t, domain.BackendCMake, uibase.Config.Backend)
	assert.Equal(t, "install", uibase.Config.Target)
	assert.Equal(t, "{source}/vsbuild", uibase.WorkingDirectory)
	assert.Equal(t, []string{"qt5", "boost"}, uibase.DependsOn)

	require.NotNil(t, uibase.Source)
	assert.Equal(t, domain.SourceGit, uibase.Source.Kind)
	assert.Equal(t, "https://github.com/Viomi/modorganizer-uibase", uibase.Source.URI)
	assert.Equal(t, "new_vfs_library", uibase.Source.Branch)
	assert.Equal(t, filepath.Join(root, "build", "modorganizer_super", "uibase"), uibase.Source.Destination)

	require.NotNil(t, uibase.Config.CMake)
	assert.Equal(t, "..", uibase.Config.CMake.Source)
	assert.Equal(t, "x64", uibase.Config.CMake.Defines["MO_ARCH"])
	assert.Equal(t, "64", uibase.Config.CMake.Defines["MO_NBITS"])
	assert.Equal(t, filepath.Join(root, "install"), uibase.Config.CMake.Defines["CMAKE_INSTALL_PREFIX:PATH"])

	require.NotNil(t, uibase.Config.UserFile)
	assert.Contains(t, uibase.Config.UserFile.Template, "{environment_id}", "the template is formatted by the backend")

	usvfs, err := ws.Unit("usvfs")
	require.NoError(t, err)
	assert.Equal(t, ".", usvfs.Config.CMake.Source)
	assert.Equal(t, "x64", usvfs.Config.CMake.Defines["PROJ_ARCH"])
	assert.Equal(t, "x64", usvfs.Config.CMake.Defines["MO_ARCH"], "defines are merged with the defaults")
	assert.Equal(t, "https://github.com/TanninOne/usvfs", usvfs.Source.URI)

	skyrimse, err := ws.Unit("game_skyrimse")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/TanninOne/modorganizer-game_skyrim_se", skyrimse.Source.URI)
	assert.Equal(t, filepath.Join(root, "build", "modorganizer_super", "game_skyrimse"), skyrimse.Source.Destination)
}

func TestLoad_Layering(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	writeFile(t, root, "build.yml", `
architecture: x86
build_type: Debug
detect_config_changes: true
executables:
  cmake: mycmake
`)
	writeFile(t, root, "user-config.yml", `
build_type: Release
job_count: 3
`)
	environ := []string{
		"UNIBUILD_GENERATOR=Ninja",
		"UNIBUILD_PATHS_INSTALL=/opt/install",
		"UNIBUILD_OFFLINE=true",
		"UNRELATED=1",
	}

	var looked []string
	lookPath := func(name string) (string, error) {
		looked = append(looked, name)
		return fakeLookPath(name)
	}

	ws, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), environ, lookPath, 4).Load(root)
	require.NoError(t, err)

	cfg := ws.Config
	assert.Equal(t, "x86", cfg.Architecture)
	assert.Equal(t, 32, cfg.NBits())
	assert.Equal(t, "Release", cfg.BuildType, "user-config.yml overrides build.yml")
	assert.Equal(t, 3, cfg.JobCount)
	assert.Equal(t, "Ninja", cfg.Generator, "the environment overrides every file")
	assert.Equal(t, "/opt/install", cfg.Paths.Install)
	assert.True(t, cfg.Offline)
	assert.True(t, cfg.DetectConfigChanges)
	assert.Equal(t, []string{"mycmake", "git"}, looked)
	assert.Equal(t, "/usr/bin/mycmake", cfg.Executable("cmake"))
	assert.Equal(t, "perl", cfg.Executable("perl"), "executable maps are merged")

	zlib, err := ws.Unit("zlib")
	require.NoError(t, err)
	assert.Equal(t, "Ninja", zlib.Config.CMake.Generator)
	assert.Equal(t, "Release", zlib.Config.CMake.Defines["CMAKE_BUILD_TYPE"])

	openssl, err := ws.Unit("openssl")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "build", "win32openssl"), openssl.Source.Destination)
}

func TestLoad_RelativeBaseDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	writeFile(t, root, "build.yml", "base_dir: work\n")

	ws, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "work"), ws.Config.BaseDir)
	assert.Equal(t, filepath.Join(root, "work", "build"), ws.Config.Paths.Build)
}

func TestLoad_MissingTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	lookPath := func(name string) (string, error) {
		if name == "git" {
			return "", errors.New("executable file not found in $PATH")
		}
		return fakeLookPath(name)
	}

	_, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, lookPath, 1).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
	assert.Contains(t, err.Error(), "git")
}

func TestLoad_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	writeFile(t, root, "build.yml", "architecture: [unterminated\n")

	_, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	_, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), []string{"UNIBUILD_JOB_COUNT=many"}, fakeLookPath, 1).
		Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoad_UnitOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	writeFile(t, root, "units.yml", `
prerequisites:
  - name: ncc
    enabled: false
  - name: zlib
    outputs: ["lib/zlib.lib"]
  - name: lz4
    backend: none
    working_dir: "{build_dir}/lz4"
projects:
  - name: my_plugin
    depends_on: [uibase]
  - name: modorganizer
    source:
      branch: master
`)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("unit disabled: ncc")

	ws, err := config.NewLoaderForTest(log, nil, fakeLookPath, 1).Load(root)
	require.NoError(t, err)

	names := unitNames(ws)
	assert.NotContains(t, names, "ncc")
	assert.Equal(t, slices.Index(names, "spdlog")+1, slices.Index(names, "lz4"), "new prerequisites are appended to their section")
	assert.Equal(t, "my_plugin", names[len(names)-1])

	zlib, err := ws.Unit("zlib")
	require.NoError(t, err)
	assert.Equal(t, []string{"{source}/lib/zlib.lib"}, zlib.ExpectedOutputs, "outputs are replaced, not merged")
	assert.Equal(t, domain.SourceHTTP, zlib.Source.Kind, "fields absent from the override are kept")

	lz4, err := ws.Unit("lz4")
	require.NoError(t, err)
	assert.Equal(t, domain.BackendNone, lz4.Config.Backend)
	assert.Equal(t, filepath.Join(root, "build", "lz4"), lz4.WorkingDirectory)
	assert.Nil(t, lz4.Source)

	plugin, err := ws.Unit("my_plugin")
	require.NoError(t, err)
	assert.Equal(t, domain.BackendCMake, plugin.Config.Backend, "new projects get the project defaults")
	assert.Equal(t, "https://github.com/Viomi/modorganizer-my_plugin", plugin.Source.URI)

	mo, err := ws.Unit("modorganizer")
	require.NoError(t, err)
	assert.Equal(t, "master", mo.Source.Branch)
	assert.Equal(t, "https://github.com/Viomi/modorganizer", mo.Source.URI)
}

func TestLoad_UnknownBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	writeFile(t, root, "units.yml", `
prerequisites:
  - name: zlib
    backend: bazel
`)

	_, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestLoad_UnnamedUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	writeFile(t, root, "units.yml", `
projects:
  - backend: none
`)

	_, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestWorkspace_UnitNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	ws, err := config.NewLoaderForTest(mocks.NewMockLogger(ctrl), nil, fakeLookPath, 1).Load(root)
	require.NoError(t, err)

	require.NoError(t, ws.Validate("zlib", "modorganizer"))
	err = ws.Validate("zlib", "nope")
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)
}
