package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	words := "pass\nfoo\nbar\nat\nto\ngo\ndog\ncat\ncod\nsun\nnut\ntag\noat\ndot\ngot\nton\nnod\nsod\nado\n"
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCmd(t *testing.T) {
	out, err := run(t, "solve", "assp", "4", "--dict", writeDict(t))
	require.NoError(t, err)

	assert.Equal(t, "PASS\nPASS\n", out)
}

// runStdout runs the command at the configured log level with its output
// left on the process stdout, and returns what was written there.
func runStdout(t *testing.T, args ...string) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	runErr := cmd.Execute()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestSolveCmd_StdoutHoldsOnlySolutions(t *testing.T) {
	out, err := runStdout(t, "solve", "assp", "4", "--dict", writeDict(t), "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "PASS\nPASS\n", out)

	out, err = runStdout(t, "solve", "assp", "4", "--dict", writeDict(t))
	require.NoError(t, err)
	assert.Equal(t, "PASS\nPASS\n", out)
}

func TestSolveCmd_NoWordsOfLength(t *testing.T) {
	out, err := run(t, "solve", "catdogsun", "3", "9", "--dict", writeDict(t))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSolveCmd_PermuteFirst(t *testing.T) {
	dict := writeDict(t)

	out, err := run(t, "solve", "catdogsun", "3", "2", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, 9, strings.Count(out, "\n"))

	out, err = run(t, "solve", "catdogsun", "3,2", "--permute", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, 18, strings.Count(out, "\n"))
	assert.Contains(t, out, "GO NUT\n")

	out, err = run(t, "solve", "catdogsun", "3", "2", "--permute", "--first", "--dict", dict)
	require.NoError(t, err)
	assert.Equal(t, "CAT GO\n", out)
}

func TestSolveCmd_PuzzleFile(t *testing.T) {
	puzzle := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(puzzle, []byte("as\nsp\n\n4\n"), 0o644))

	out, err := run(t, "solve", "-p", puzzle, "--dict", writeDict(t), "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "PASS\nPASS\n", out)
}

func TestSolveCmd_Errors(t *testing.T) {
	dict := writeDict(t)

	_, err := run(t, "solve", "abc", "3", "--dict", dict)
	assert.Error(t, err)

	_, err = run(t, "solve", "assp", "--dict", dict)
	assert.Error(t, err)

	_, err = run(t, "solve", "assp", "4", "--dict", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}
