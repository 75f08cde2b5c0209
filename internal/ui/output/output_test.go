package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(&bytes.Buffer{}))
}

func TestColorProfile_RedirectedFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, termenv.Ascii, output.ColorProfile(f))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	require.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}
