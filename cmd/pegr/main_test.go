package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPegr(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestMatchCommand(t *testing.T) {
	grammarPath := writeTemp(t, "g.peg", `s <- "abc"`)
	inputPath := writeTemp(t, "in.txt", "abc")

	out, err := runPegr(t, "match", grammarPath, inputPath)
	require.NoError(t, err)
	assert.Contains(t, out, "abc")
}

func TestMatchCommandSyntaxError(t *testing.T) {
	grammarPath := writeTemp(t, "g.peg", `s <- "abc"`)
	inputPath := writeTemp(t, "in.txt", "xyz")

	_, err := runPegr(t, "match", grammarPath, inputPath)
	assert.Error(t, err)
}

func TestDumpCommand(t *testing.T) {
	grammarPath := writeTemp(t, "g.peg", `s <- "abc"+`)

	out, err := runPegr(t, "dump", grammarPath)
	require.NoError(t, err)
	assert.Contains(t, out, "OneOrMore")
}

func TestLangDemoCommand(t *testing.T) {
	out, err := runPegr(t, "lang-demo", "1+2+3")
	require.NoError(t, err)
	assert.Contains(t, out, "6")
}
