package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	l, err := New(Options{Level: "loud"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())

	l, err = New(Options{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestNew_ConsoleAndFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "client.log")
	var console bytes.Buffer

	l, err := New(Options{Level: "info", File: path, Console: &console})
	require.NoError(t, err)

	l.WithField("component", "test").Info("hello")
	l.Debug("hidden")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "component=test")
	assert.NotContains(t, string(data), "hidden")
	assert.Equal(t, string(data), console.String())
}

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	l, err := New(Options{Format: "json", Console: &console})
	require.NoError(t, err)

	l.WithField("news_id", 42).Warn("analysis unavailable")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(console.Bytes(), &entry))
	assert.Equal(t, "analysis unavailable", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.InDelta(t, 42, entry["news_id"], 0)
}

func TestNew_FileOpenError(t *testing.T) {
	t.Parallel()

	_, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	l := Discard()
	l.Error("dropped")
	assert.NoError(t, l.Close())
}
