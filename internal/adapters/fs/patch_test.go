package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/fs"
	"go.trai.ch/unibuild/internal/core/domain"
)

func TestApplyLinePatches(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "mkspecs", "win32-msvc2013", "qmake.conf")
	writeFile(t, conf, "QMAKE_CFLAGS = /O2\nLOAD = x")

	unit := &domain.BuildUnit{
		Name:             "qt5",
		WorkingDirectory: dir,
		Config: domain.BuildConfig{
			AppendLines: []domain.AppendLines{{
				File:  "mkspecs/win32-msvc2013/qmake.conf",
				Lines: []string{"LOAD = x", "QMAKE_CXXFLAGS += /MP"},
			}},
		},
	}

	require.NoError(t, fs.ApplyLinePatches(unit))
	require.NoError(t, fs.ApplyLinePatches(unit))

	data, err := os.ReadFile(conf)
	require.NoError(t, err)
	assert.Equal(t, "QMAKE_CFLAGS = /O2\nLOAD = x\nQMAKE_CXXFLAGS += /MP\n", string(data))
}

func TestApplyLinePatches_MissingDirectory(t *testing.T) {
	unit := &domain.BuildUnit{
		Name:             "qt5",
		WorkingDirectory: t.TempDir(),
		Config: domain.BuildConfig{
			AppendLines: []domain.AppendLines{{File: "qtbase/mkspecs/qmake.conf", Lines: []string{"X"}}},
		},
	}
	assert.Error(t, fs.ApplyLinePatches(unit))
}
