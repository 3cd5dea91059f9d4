package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/cursorfit/internal/config"
	"github.com/iw2rmb/cursorfit/layout"
)

// run executes the root command with a clean HOME and working directory so
// no user configuration leaks in.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "cursorfit v")
	assert.Contains(t, out, "github.com/iw2rmb/cursorfit")
}

func TestTruncate_CursorFromText(t *testing.T) {
	out, err := run(t, "truncate", "--explain", "0there@is@a@t|ime@when@the@oper")
	require.NoError(t, err)
	assert.Equal(t, "...@a@t|ime@...\ntext [9, 17) ellipsis 3/3 width 14\n", out)
}

func TestTruncate_CursorFlagAndOverrides(t *testing.T) {
	out, err := run(t, "truncate", "--cursor", "2", "--viewport", "20", "hello")
	require.NoError(t, err)
	assert.Equal(t, "he|llo\n", out)

	out, err = run(t, "truncate", "--cursor", "5", "--viewport", "4", "--margin", "2", "--ellipsis-max", "1", "abcdefghij")
	require.NoError(t, err)
	assert.Equal(t, ".de|fg.\n", out)
}

func TestTruncate_NoCursor(t *testing.T) {
	_, err := run(t, "truncate", "hello")
	require.Error(t, err)
}

func TestSplit(t *testing.T) {
	out, err := run(t, "split", "--marker", "~", "~~int x|= 0")
	require.NoError(t, err)
	assert.Equal(t, "~~int x\n~~|= 0\n", out)

	out, err = run(t, "split", "--cursor", "4", "  abcd")
	require.NoError(t, err)
	assert.Equal(t, "  ab\n  |cd\n", out)
}

func TestSplit_MarkerMustBeOneGrapheme(t *testing.T) {
	for _, marker := range []string{"~~", ""} {
		_, err := run(t, "split", "--marker", marker, "~~a|b")
		require.Error(t, err, "marker %q", marker)
		assert.True(t, errors.Is(err, config.ErrInvalid))
	}

	out, err := run(t, "split", "--marker", "👩\u200d💻", "👩\u200d💻a|b")
	require.NoError(t, err)
	assert.Equal(t, "👩\u200d💻a\n👩\u200d💻|b\n", out)
}

func TestSplit_CursorOutOfRange(t *testing.T) {
	_, err := run(t, "split", "--cursor", "9", "ab")
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrCursorOutOfRange))
}

func TestLitmus_BuiltinSuites(t *testing.T) {
	out, err := run(t, "litmus", "--summary")
	require.NoError(t, err)
	assert.Equal(t, "enter: 8/8 passed\noverflow-narrow: 7/7 passed\noverflow: 34/34 passed\n", out)
}

func TestLitmus_RendersReport(t *testing.T) {
	out, err := run(t, "litmus")
	require.NoError(t, err)
	assert.Contains(t, out, "─────[before]─────")
	assert.Contains(t, out, "enter: all 8 succeeded")
}

func TestLitmus_FailingSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	src := "kind = \"enter\"\n[[cases]]\ninput = \"a|b\"\nexpected = \"nope\"\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := run(t, "litmus", "--summary", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errLitmusFailed))
	assert.Equal(t, "bad: 0/1 passed\n", out)
}

func TestConfigGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")
	out, err := run(t, "config", "generate", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = run(t, "--config", path, "split", "--marker", "~", "~a|b")
	require.NoError(t, err)
	assert.Equal(t, "~a\n~|b\n", out)
}

func TestConfigGenerate_IgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[layout\n"), 0o644))

	_, err := run(t, "--config", broken, "config", "generate", filepath.Join(dir, "new.toml"))
	require.NoError(t, err)

	_, err = run(t, "--config", broken, "split", "a|b")
	require.Error(t, err)
}

func TestLogFlags(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "cursorfit.log")
	_, err := run(t, "--log-level", "debug", "--log-file", logPath, "truncate", "a|b")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command cursorfit truncate")
}
