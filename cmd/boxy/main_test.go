package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout. Flag
// variables are reset first since cobra keeps them between runs.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, verbose = "", false
	anchorsBox = boxFlags{size: "1,1,1", at: "0,0,0", rotate: "0,0,0"}
	anchorsAll = false
	resolveBox = boxFlags{size: "1,1,1", at: "0,0,0", rotate: "0,0,0"}
	resolveTo, resolveAxis, resolveDegrees = "", "", 90
	evalYAML = false
	exportDir, exportJSON = "out", ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseVec(t *testing.T) {
	v, err := parseVec("1, 2.5,-3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, 2.5, v.Y)
	assert.Equal(t, -3.0, v.Z)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		_, err := parseVec(bad)
		assert.Error(t, err, bad)
	}
}

func TestAnchorsCommand(t *testing.T) {
	out, err := run(t, "anchors", "--size", "2,3,1", "--pivot", "bottom")
	require.NoError(t, err)
	assert.Contains(t, out, "(0, 1.5, 0)")
	assert.Contains(t, out, "(-1, 1.5, 0)")
	assert.Equal(t, 8, strings.Count(out, "\n"), out)

	out, err = run(t, "anchors", "--all")
	require.NoError(t, err)
	assert.Equal(t, 28, strings.Count(out, "\n"), out)
	assert.Contains(t, out, "v7")
}

func TestAnchorsRejectsAdvancedPivot(t *testing.T) {
	_, err := run(t, "anchors", "--pivot", "v0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advanced pivots")

	cfgPath := filepath.Join(t.TempDir(), "boxy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("advanced_pivots: true\n"), 0o644))
	_, err = run(t, "--config", cfgPath, "anchors", "--pivot", "v0")
	assert.NoError(t, err)
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "--size", "2,3,1", "--pivot", "bottom", "--to", "c")
	require.NoError(t, err)
	assert.Contains(t, out, "translation: (0, 1.5, 0)")
	assert.Contains(t, out, "aabb:        (-1, 0, -0.5) .. (1, 3, 0.5)")

	_, err = run(t, "resolve", "--reorient", "y", "--degrees", "45")
	assert.Error(t, err)
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, "eval", "../../examples/doorway.boxy")
	require.NoError(t, err)
	for _, name := range []string{"front-door", "kitchen-window", "porch-steps", "plinth"} {
		assert.Contains(t, out, name)
	}

	out, err = run(t, "eval", "--yaml", "../../examples/doorway.boxy")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: door")
	assert.Contains(t, out, "keep_positive: false")
}

func TestEvalCommandFailsOnErrors(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bad.boxy")
	require.NoError(t, os.WriteFile(src, []byte(`(cube "c" (boxy :size (vec3 0 1 1)))`), 0o644))
	_, err := run(t, "eval", src)
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "one.boxy")
	require.NoError(t, os.WriteFile(src, []byte(`(cube "block" (boxy :size (vec3 10 10 10)))`), 0o644))
	cfgPath := filepath.Join(dir, "boxy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mesh_cells: 30\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "export", src, "--out", filepath.Join(dir, "stl"))
	require.NoError(t, err)
	assert.Contains(t, out, "block.stl")

	jsonPath := filepath.Join(dir, "meshes.json")
	_, err = run(t, "--config", cfgPath, "export", src, "--json", jsonPath)
	require.NoError(t, err)
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"itemName":"block"`)
}
