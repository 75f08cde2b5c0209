package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/fs"
)

func TestInspector_ModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zlib.lib")
	writeFile(t, path, "lib")

	stamp := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	in := fs.NewInspector()
	mtime, ok, err := in.ModTime(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, stamp.UnixNano(), mtime)

	_, ok, err = in.ModTime(filepath.Join(dir, "missing.lib"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInspector_DirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	writeFile(t, file, "")

	in := fs.NewInspector()
	assert.True(t, in.DirExists(dir))
	assert.False(t, in.DirExists(file))
	assert.False(t, in.DirExists(filepath.Join(dir, "nope")))
}

func TestInspector_Missing(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.dll")
	b := filepath.Join(dir, "b.dll")
	c := filepath.Join(dir, "c.dll")
	writeFile(t, b, "")

	missing, err := fs.NewInspector().Missing([]string{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, []string{a, c}, missing)
}
