package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runIDPattern = regexp.MustCompile(`run=[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func TestNewWritesPrefixAndRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	logger.Info("maze generated", "size", 7)

	out := buf.String()
	assert.Contains(t, out, "maze")
	assert.Contains(t, out, "maze generated")
	assert.Contains(t, out, "size=7")
	assert.Regexp(t, runIDPattern, out)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Debug("hidden too")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLevelParsing(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", " warn ", "error"} {
		_, err := New(&bytes.Buffer{}, level)
		assert.NoError(t, err, "level %q", level)
	}

	_, err := New(&bytes.Buffer{}, "chatty")
	assert.Error(t, err)
}

func TestRunIDsDiffer(t *testing.T) {
	var a, b bytes.Buffer
	la, err := New(&a, "")
	require.NoError(t, err)
	lb, err := New(&b, "")
	require.NoError(t, err)

	la.Info("x")
	lb.Info("x")
	assert.NotEqual(t, runIDPattern.FindString(a.String()), runIDPattern.FindString(b.String()))
}

func TestOpenFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "maze.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("first\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
