package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func newIntp(t *testing.T) (*Intp, *bytes.Buffer) {
	pterm.DisableColor()
	out := &bytes.Buffer{}
	intp, err := NewIntp(out)
	require.NoError(t, err)
	return intp, out
}

func TestEvalSTLC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.repl")
	defer teardown()
	//
	intp, out := newIntp(t)
	quit, err := intp.Execute(`(\x:0->0.x)(\x:0.0)`)
	require.NoError(t, err)
	require.False(t, quit)
	require.Contains(t, out.String(), `\x:0.0`)
	require.Contains(t, out.String(), `0->0`)
	//
	_, err = intp.Execute(`(\x.x x)(\x.x x)`)
	require.Error(t, err, "expected evaluation to exceed step limit")
}

func TestLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.repl")
	defer teardown()
	//
	intp, out := newIntp(t)
	_, err := intp.Execute(":lang sysf")
	require.NoError(t, err)
	require.Equal(t, "sysf> ", intp.Prompt())
	_, err = intp.Execute(`(@T./x:T.x)[0]`)
	require.NoError(t, err)
	require.Contains(t, out.String(), "0->0")
	//
	_, err = intp.Execute(":lang arith")
	require.NoError(t, err)
	_, err = intp.Execute("2 + 3 x 4")
	require.NoError(t, err)
	require.Contains(t, out.String(), "14")
	//
	_, err = intp.Execute(":lang cobol")
	require.Error(t, err)
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slang.repl")
	defer teardown()
	//
	intp, out := newIntp(t)
	_, err := intp.Execute(":tree")
	require.Error(t, err, "no tree before first input")
	_, err = intp.Execute(`\x.x`)
	require.NoError(t, err)
	for _, cmd := range []string{":tree", ":states", ":table", ":help"} {
		_, err = intp.Execute(cmd)
		require.NoError(t, err, cmd)
	}
	require.Contains(t, out.String(), "STATE[0]")
	_, err = intp.Execute(":frobnicate")
	require.Error(t, err)
	//
	dir := t.TempDir()
	dot := filepath.Join(dir, "stlc.dot")
	_, err = intp.Execute(":dot " + dot)
	require.NoError(t, err)
	content, err := os.ReadFile(dot)
	require.NoError(t, err)
	require.Contains(t, string(content), "digraph")
	//
	quit, err := intp.Execute(":quit")
	require.NoError(t, err)
	require.True(t, quit)
}
