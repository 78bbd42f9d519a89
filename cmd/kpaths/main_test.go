package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = runWith(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func decodeRows(t *testing.T, raw string) []pathRow {
	t.Helper()
	var doc map[string][]pathRow
	require.NoError(t, yaml.Unmarshal([]byte(raw), &doc))

	return doc["paths"]
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, "kpaths", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.True(t, root.SilenceUsage)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["find"])
	assert.True(t, names["demo"])
}

func TestDemo_Table(t *testing.T) {
	code, out, _ := execute(t, "demo")
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, out, "C → D → F → H")
	assert.Contains(t, out, "C → E → F → H")
	assert.Contains(t, out, "C → E → G → H")
	assert.NotContains(t, out, "C → E → D → F → H")
}

func TestDemo_YAMLByLength(t *testing.T) {
	code, out, _ := execute(t, "demo", "-k", "3", "--weight", "length", "-o", "yaml")
	require.Equal(t, ExitCodeSuccess, code)

	rows := decodeRows(t, out)
	require.Len(t, rows, 3)
	assert.Equal(t, pathRow{Rank: 1, Weight: 5, Spur: 0, Path: []string{"C", "E", "F", "H"}}, rows[0])
	assert.Equal(t, 7.0, rows[1].Weight)
	assert.Equal(t, []string{"C", "D", "F", "H"}, rows[2].Path)
}

func TestFind_FromFile(t *testing.T) {
	path := writeGraph(t, `
directed: false
edges:
  - {from: a, to: b, weight: 1}
  - {from: b, to: c, weight: 1}
  - {from: a, to: c, weight: 5}
`)
	code, out, _ := execute(t, "find", "--graph", path, "--from", "a", "--to", "c", "-k", "5", "--parallel", "2", "-o", "yaml")
	require.Equal(t, ExitCodeSuccess, code)

	rows := decodeRows(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0].Path)
	assert.Equal(t, []string{"a", "c"}, rows[1].Path)
	assert.Equal(t, 5.0, rows[1].Weight)
}

func TestFind_NoPathExitCode(t *testing.T) {
	path := writeGraph(t, "directed: true\nedges: [{from: a, to: b}]\n")
	code, _, errOut := execute(t, "find", "--graph", path, "--from", "b", "--to", "a")
	assert.Equal(t, ExitCodeNoPath, code)
	assert.Contains(t, errOut, "no path")
}

func TestFind_Errors(t *testing.T) {
	path := writeGraph(t, "edges: [{from: a, to: b}]\n")

	tests := []struct {
		name string
		args []string
	}{
		{"missing graph flag", []string{"find", "--from", "a", "--to", "b"}},
		{"missing endpoints", []string{"find", "--graph", path}},
		{"unknown vertex", []string{"find", "--graph", path, "--from", "a", "--to", "z"}},
		{"bad k", []string{"find", "--graph", path, "--from", "a", "--to", "b", "-k", "0"}},
		{"bad parallel", []string{"find", "--graph", path, "--from", "a", "--to", "b", "--parallel", "0"}},
		{"bad format", []string{"find", "--graph", path, "--from", "a", "--to", "b", "-o", "xml"}},
		{"bad log level", []string{"--log-level", "loud", "demo"}},
		{"unreadable graph", []string{"find", "--graph", filepath.Join(t.TempDir(), "nope.yaml"), "--from", "a", "--to", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := execute(t, tc.args...)
			assert.Equal(t, ExitCodeError, code)
			assert.Contains(t, errOut, "Error:")
		})
	}
}

func TestDebugLogging(t *testing.T) {
	code, _, errOut := execute(t, "--log-level", "debug", "demo", "-k", "2")
	require.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, errOut, "seed path")
	assert.Contains(t, errOut, "accepted path")
}
