package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/structure"
	"github.com/katalvlaran/stepviz/validate"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	a := newApp(io.Discard)
	buf := new(bytes.Buffer)
	a.root.SetOut(buf)
	a.root.SetErr(buf)
	a.root.SetArgs(append(args, "--no-color"))

	err := a.Execute(context.Background())

	return buf.String(), err
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "nine teaching data structures")

	_, err = execute(t, "unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, info := range structure.Catalog() {
		assert.Contains(t, out, info.Name)
	}
	assert.Contains(t, out, "insert-head, insert-tail, delete")
	assert.Contains(t, out, "dfs, bfs")
}

func TestSeed(t *testing.T) {
	out, err := execute(t, "seed", "array")
	require.NoError(t, err)
	assert.Contains(t, out, "Arrays:")
	assert.Contains(t, out, "[ 5 | 2 | 8 | 1 | 9 | 3 ]")

	_, err = execute(t, "seed", "heap")
	require.Error(t, err)
}

func TestRun_Text(t *testing.T) {
	out, err := execute(t, "run", "array", "search", "--value", "9", "--instant")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. compare [0]=5 with 9")
	assert.Contains(t, out, "[ 5 | 2 | 8 | 1 | <9> | 3 ]")
	assert.Contains(t, out, "found 9 at index 4 (5 steps")
}

func TestRun_TextShowsMutations(t *testing.T) {
	out, err := execute(t, "run", "stack", "push", "--value", "7", "--instant")
	require.NoError(t, err)
	assert.Contains(t, out, "[ 1 | 2 | 3 | 4 | <7> ] <- top")
}

func TestRun_Table(t *testing.T) {
	out, err := execute(t, "run", "hashtable", "search", "--key", "Banana", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "bucket 0")
}

func TestRun_YAML(t *testing.T) {
	out, err := execute(t, "run", "graph", "dfs", "--start", "A", "-o", "yaml")
	require.NoError(t, err)

	var doc struct {
		Kind    string `yaml:"kind"`
		Op      string `yaml:"op"`
		Outcome struct {
			Order []string `yaml:"order"`
		} `yaml:"outcome"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "graph", doc.Kind)
	assert.Equal(t, "dfs", doc.Op)
	assert.Equal(t, []string{"A", "B", "C", "E", "D"}, doc.Outcome.Order)
}

func TestRun_GraphDepth(t *testing.T) {
	out, err := execute(t, "run", "graph", "bfs", "--start", "A", "--depth", "1", "-o", "yaml")
	require.NoError(t, err)

	var doc struct {
		Outcome struct {
			Order []string `yaml:"order"`
		} `yaml:"outcome"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"A", "B", "D"}, doc.Outcome.Order)

	_, err = execute(t, "run", "graph", "bfs", "--depth", "0", "-o", "yaml")
	require.ErrorIs(t, err, validate.ErrBadDepth)
}

func TestRun_Rejected(t *testing.T) {
	_, err := execute(t, "run", "array", "search", "--value", "nine", "--instant")
	require.ErrorIs(t, err, validate.ErrNotANumber)

	_, err = execute(t, "run", "graph", "bfs", "--start", "Z", "-o", "yaml")
	require.ErrorIs(t, err, validate.ErrUnknownNode)

	_, err = execute(t, "run", "array", "search", "--value", "9", "-o", "xml")
	require.ErrorIs(t, err, errUnknownOutput)

	_, err = execute(t, "run", "array")
	require.Error(t, err)
}

func TestTour(t *testing.T) {
	out, err := execute(t, "tour", "--instant")
	require.NoError(t, err)

	last := -1
	for _, info := range structure.Catalog() {
		at := strings.Index(out, "== "+info.Name)
		require.GreaterOrEqual(t, at, 0, info.Name)
		assert.Greater(t, at, last, "tour output follows catalog order")
		last = at
	}
	assert.Contains(t, out, "order: 20 30 40 50 60 70 80")
	assert.Contains(t, out, "grape=🍇")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playback:\n  speed: -1\n"), 0o600))

	_, err := execute(t, "--config", path, "list")
	require.ErrorIs(t, err, config.ErrInvalidSpeed)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	require.Error(t, err)

	_, err = execute(t, "--log-format", "xml", "list")
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

func TestServeMetrics(t *testing.T) {
	a := newApp(io.Discard)
	a.metrics = metrics.New()
	a.metrics.RunStarted()

	require.NoError(t, a.serveMetrics("127.0.0.1:0"))
	t.Cleanup(func() { assert.NoError(t, a.shutdown()) })

	resp, err := http.Get("http://" + a.server.Addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "active_runs 1")
}
