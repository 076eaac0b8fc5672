package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/boxy/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp returns an app with a coarse mesh and a discarded log.
func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.MeshCells = 30
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TestE2EDoorwayExample exercises the full pipeline: source, engine,
// validation, tessellation.
func TestE2EDoorwayExample(t *testing.T) {
	a := newTestApp(t, nil)

	source, err := os.ReadFile("../../examples/doorway.boxy")
	require.NoError(t, err)

	res, err := a.Build(string(source))
	require.NoError(t, err)
	for _, e := range res.Errors {
		t.Errorf("eval error (line %d): %s", e.Line, e.Message)
	}
	require.True(t, res.OK())

	want := []string{"front-door", "kitchen-window", "porch-steps", "plinth"}
	require.Len(t, res.Meshes, len(want))
	for i, m := range res.Meshes {
		assert.Equal(t, want[i], m.ItemName)
		assert.False(t, m.IsEmpty(), "item %q has no geometry", m.ItemName)
		assert.Equal(t, len(m.Vertices), len(m.Normals))
	}

	// The mirrored plinth is symmetric about the window centre, x = 175.
	min, max := res.Meshes[3].Extent()
	assert.InDelta(t, 175, (min[0]+max[0])/2, 3)
}

func TestEvaluateReportsEvalErrors(t *testing.T) {
	a := newTestApp(t, nil)

	res, err := a.Evaluate(`(door "d" (boxy :size (vec3 0 210 20)))`)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Nil(t, res.Scene)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "size.x")
}

func TestEvaluateReportsValidationErrors(t *testing.T) {
	a := newTestApp(t, nil)

	// Named advanced pivots evaluate, but validation rejects them unless
	// the setting is on.
	src := `(cube "c" (boxy :size (vec3 1 1 1) :pivot :v0))`
	res, err := a.Evaluate(src)
	require.NoError(t, err)
	assert.False(t, res.OK())
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "advanced pivots")

	cfg := config.Default()
	cfg.AdvancedPivots = true
	res, err = newTestApp(t, cfg).Evaluate(src)
	require.NoError(t, err)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
}

func TestEvaluateSurfacesWarnings(t *testing.T) {
	a := newTestApp(t, nil)

	res, err := a.Evaluate(`(door "deep" (boxy :size (vec3 100 210 20) :pivot :bottom) :depth 30)`)
	require.NoError(t, err)
	require.True(t, res.OK())
	require.NotNil(t, res.Scene)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "leaf depth")
	assert.Equal(t, res.Scene.Lookup("deep").ID, res.Warnings[0].NodeID)
}

func TestBuildJSON(t *testing.T) {
	a := newTestApp(t, nil)

	res, err := a.Build(`
(cube "a" (boxy :size (vec3 10 10 10)))
(cube "b" (boxy :size (vec3 10 10 10) :at (vec3 30 0 0)))
`)
	require.NoError(t, err)
	require.True(t, res.OK())

	var buf bytes.Buffer
	require.NoError(t, res.WriteJSON(&buf))

	var decoded []MeshData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a", decoded[0].ItemName)
	assert.Equal(t, colorPalette[0], decoded[0].Color)
	assert.Equal(t, colorPalette[1], decoded[1].Color)
	assert.NotEmpty(t, decoded[1].Vertices)
}

func TestExportSTL(t *testing.T) {
	a := newTestApp(t, nil)
	dir := filepath.Join(t.TempDir(), "out")

	res, paths, err := a.ExportSTL(`
(cube "block one" (boxy :size (vec3 10 10 10)))
(defbox "spacer" (boxy :size (vec3 5 5 5) :at (vec3 20 0 0)))
`, dir)
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Equal(t, []string{
		filepath.Join(dir, "block_one.stl"),
		filepath.Join(dir, "spacer.stl"),
	}, paths)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestExportSTLNamesDoNotCollide(t *testing.T) {
	a := newTestApp(t, nil)
	dir := t.TempDir()

	res, paths, err := a.ExportSTL(`
(cube "a b" (boxy :size (vec3 4 4 4)))
(cube "a_b" (boxy :size (vec3 2 2 2) :at (vec3 10 0 0)))
(cube "a/b" (boxy :size (vec3 3 3 3) :at (vec3 20 0 0)))
`, dir)
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Equal(t, []string{
		filepath.Join(dir, "a_b.stl"),
		filepath.Join(dir, "a_b-2.stl"),
		filepath.Join(dir, "a_b-3.stl"),
	}, paths)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSTLFileName(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "a_b.stl", stlFileName("a b", used))
	assert.Equal(t, "a_b-2.stl", stlFileName("a_b", used))
	assert.Equal(t, "a_b-2-2.stl", stlFileName("a_b-2", used))
	assert.Equal(t, "A_B-3.stl", stlFileName("A B", used))
}

func TestExportSTLStopsOnErrors(t *testing.T) {
	a := newTestApp(t, nil)
	dir := filepath.Join(t.TempDir(), "never")

	res, paths, err := a.ExportSTL(`(cube "c" (boxy :size (vec3 1 1`, dir)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Empty(t, paths)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.MeshCells = 20
	a := New(cfg, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := a.Build(`(cube "c" (boxy :size (vec3 1 1 1)))`)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=evaluated"), out)
	assert.True(t, strings.Contains(out, "msg=built"), out)
}
