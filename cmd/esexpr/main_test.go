package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esexpr/esexpr/internal/exitcode"
	"github.com/esexpr/esexpr/pkg/api"
)

func runCommand(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand(viper.New())
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(append(args, "--color", "never", "--log-level", "silent"))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTempFile(t *testing.T, name string, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	out, _, err := runCommand(t, "a + b", "parse")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, _, err = runCommand(t, "a === NaN", "parse")
	require.NoError(t, err)
	assert.Equal(t, "ok (1 warning)\n", out)

	out, _, err = runCommand(t, "a ? b", "parse")
	require.Error(t, err)
	assert.Equal(t, "", out)
	require.True(t, exitcode.WasReported(err))
	assert.EqualError(t, err, "<stdin>:1:5: Expected \":\" but found end of file")
}

func TestPrintCommand(t *testing.T) {
	out, _, err := runCommand(t, "(a + b) * (c)", "print")
	require.NoError(t, err)
	assert.Equal(t, "(a + b) * c\n", out)

	out, _, err = runCommand(t, "a + +b", "print", "--minify-whitespace")
	require.NoError(t, err)
	assert.Equal(t, "a+ +b\n", out)

	out, _, err = runCommand(t, "x", "print", "--program")
	require.NoError(t, err)
	assert.Equal(t, "x;\n", out)

	out, _, err = runCommand(t, "(a)", "print", "--preserve-parens")
	require.NoError(t, err)
	assert.Equal(t, "(a)\n", out)

	_, _, err = runCommand(t, "await a", "print")
	require.Error(t, err)
	out, _, err = runCommand(t, "await a", "print", "--await")
	require.NoError(t, err)
	assert.Equal(t, "await a\n", out)
}

func TestASTCommand(t *testing.T) {
	out, _, err := runCommand(t, "a", "ast", "--compact")
	require.NoError(t, err)
	assert.Equal(t, `{"end":1,"name":"a","start":0,"type":"Identifier"}`+"\n", out)

	out, _, err = runCommand(t, "a", "ast")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"end\": 1,\n  \"name\": \"a\",\n  \"start\": 0,\n  \"type\": \"Identifier\"\n}\n", out)

	_, _, err = runCommand(t, "a +", "ast")
	require.Error(t, err)
}

func TestLoaderSelection(t *testing.T) {
	path := writeTempFile(t, "input.ts", "a satisfies T")
	out, _, err := runCommand(t, "", "print", path)
	require.NoError(t, err)
	assert.Equal(t, "a satisfies T\n", out)

	// The extension doesn't matter if the loader is explicit
	_, _, err = runCommand(t, "", "print", path, "--loader", "js")
	require.Error(t, err)

	t.Setenv("ESEXPR_LOADER", "ts")
	out, _, err = runCommand(t, "a as T", "print")
	require.NoError(t, err)
	assert.Equal(t, "a as T\n", out)

	_, _, err = runCommand(t, "a", "print", "--loader", "coffee")
	require.EqualError(t, err, "Invalid loader: \"coffee\" (valid: js, jsx, ts, tsx)")
	assert.Equal(t, exitcode.Usage, exitcode.StatusOf(err))

	_, _, err = runCommand(t, "a", "print", "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, exitcode.Usage, exitcode.StatusOf(err))
}

func TestConfigFile(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "await: true\nyield: true\n")
	out, _, err := runCommand(t, "[await a, yield b]", "print", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "[await a, yield b]\n", out)

	_, _, err = runCommand(t, "a", "print", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "", "parse", filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	require.False(t, exitcode.WasReported(err))
	assert.Equal(t, exitcode.Failure, exitcode.StatusOf(err))
}

func TestVerbose(t *testing.T) {
	out, stderr, err := runCommand(t, "a", "parse", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
	assert.Contains(t, stderr, "parsing")
	assert.Contains(t, stderr, "parsed")
	assert.Contains(t, stderr, "<stdin>")
}

func TestLoaderForPath(t *testing.T) {
	v := viper.New()
	for path, expected := range map[string]api.Loader{
		"a.js":    api.LoaderJS,
		"a.jsx":   api.LoaderJSX,
		"a.ts":    api.LoaderTS,
		"a.tsx":   api.LoaderTSX,
		"a.mjs":   api.LoaderJS,
		"<stdin>": api.LoaderJS,
	} {
		loader, err := loaderForPath(v, path)
		require.NoError(t, err)
		assert.Equal(t, expected, loader, path)
	}
}
