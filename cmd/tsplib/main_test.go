// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tsplib/tsplib"
	"github.com/stretchr/testify/require"
)

const small5 = "../../tsplib/testdata/small5.atsp"

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stderr)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, "info", small5)
	require.NoError(t, err)
	require.Contains(t, out, "NAME: small5\n")
	require.Contains(t, out, "TYPE: ATSP\n")
	require.Contains(t, out, "DIMENSION: 5\n")
	require.Contains(t, out, "EDGE_WEIGHT_TYPE: EXPLICIT\n")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.atsp")
	_, logs, err := execute(t, "convert", small5, plain)
	require.NoError(t, err)
	require.Contains(t, logs, "msg=converted")

	p, err := tsplib.ParseFile(plain)
	require.NoError(t, err)
	require.Equal(t, 5, p.Size())
	require.False(t, p.Symmetric())

	sym := filepath.Join(dir, "sym.tsp")
	_, _, err = execute(t, "--log-level", "error", "convert", "--symmetric", small5, sym)
	require.NoError(t, err)

	q, err := tsplib.ParseFile(sym)
	require.NoError(t, err)
	require.Equal(t, 10, q.Size())
	require.Equal(t, "small5(SYM)", q.Name())
	require.True(t, q.Symmetric())
}

func TestNeighbours(t *testing.T) {
	out, _, err := execute(t, "neighbours", small5, "--node", "0")
	require.NoError(t, err)
	require.Equal(t, "0: [1 2 3 4] max=48\n", out)

	out, _, err = execute(t, "neighbours", small5)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5)

	_, _, err = execute(t, "neighbours", small5, "--node", "5")
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	dir := t.TempDir()
	abs, err := filepath.Abs(small5)
	require.NoError(t, err)
	cfg := filepath.Join(dir, "bench.yaml")
	body := "runs: 2\nsolvers: [nearest-neighbour, 2-opt]\nproblems:\n  - path: " + abs + "\n    best: 95\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o644))

	out, logs, err := execute(t, "bench", "--config", cfg, "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "PROBLEM"))
	require.Equal(t, []string{"small5", "nearest-neighbour", "2", "0", "0", "95"}, strings.Fields(lines[1])[:6])
	require.Contains(t, logs, "msg=summary")
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "info", small5)
	require.Error(t, err)

	_, _, err = execute(t, "info", "does-not-exist.tsp")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "bench", "--config", filepath.Join(t.TempDir(), "cfg.ini"))
	require.Error(t, err)
}
