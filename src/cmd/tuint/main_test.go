package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunProgram(t *testing.T) {
	path := writeProgram(t, "INIT a 42\nOUT a\nEXIT\n")
	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{path}, &out))
	assert.Equal(t, "42\n", out.String())
}

func TestRunMultiline(t *testing.T) {
	path := writeProgram(t, "STR banner Hello\nWorld\\n\nOUTSTR banner\nOUT done\n")
	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{path}, &out))
	assert.Equal(t, "Hello World\ndone\n", out.String())
}

func TestRunFatalKeepsEarlierOutput(t *testing.T) {
	path := writeProgram(t, "OUT before INIT a nope OUT after")
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{path}, &out))
	assert.Equal(t, "before\n", out.String())
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.txt")}, &out))
	assert.Empty(t, out.String())
}

func TestRunDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultProgram), []byte("OUT hi"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	var out bytes.Buffer
	assert.Equal(t, 0, run(nil, &out))
	assert.Equal(t, "hi\n", out.String())
}

func TestRunTooManyArgs(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{"a", "b"}, &out))
}
