package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_PrettyOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("fetching zlib")
	l.Warn("offline: skipping update")

	assert.Equal(t, "fetching zlib\n! offline: skipping update\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	err := zerr.With(zerr.Wrap(errors.New("exit status 1"), "build failed"), "unit", "zlib")
	l.Error(err)

	want := "✗ Error: build failed\n       unit: zlib\n\n  Caused by:\n    → exit status 1\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Info("recorded manifest")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "recorded manifest", rec["msg"])
}

func TestLogger_SetOutputNilDefaultsToStderr(t *testing.T) {
	l := logger.New()
	assert.NotPanics(t, func() {
		l.SetOutput(nil)
		l.Info("stderr")
	})
}
