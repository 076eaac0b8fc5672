// Package app wires the engine, scene validation, and tessellation into
// the pipeline the CLI drives.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chazu/boxy/pkg/config"
	"github.com/chazu/boxy/pkg/engine"
	"github.com/chazu/boxy/pkg/kernel"
	"github.com/chazu/boxy/pkg/kernel/sdfx"
	"github.com/chazu/boxy/pkg/scene"
	"github.com/chazu/boxy/pkg/tessellate"
	"github.com/pkg/errors"
)

// colorPalette assigns distinct colors to items in mesh output.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App runs boxy sources through evaluation, validation and meshing.
type App struct {
	cfg    *config.Config
	engine *engine.Engine
	kernel kernel.Kernel
	log    *slog.Logger
}

// MeshData is the JSON mesh format written by the export command.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	ItemName string    `json:"itemName"`
	Color    string    `json:"color"`
}

// Result is the outcome of one run. A result with Errors has no meshes.
type Result struct {
	Scene    *scene.Scene
	Meshes   []*kernel.Mesh
	Errors   []engine.EvalError
	Warnings []engine.EvalWarning
}

// OK reports whether the run produced no errors.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// New creates an App using cfg (nil for defaults) and logger (nil for
// slog.Default()).
func New(cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:    cfg,
		engine: engine.NewEngine(cfg),
		kernel: sdfx.NewWithCells(cfg.MeshCells),
		log:    logger,
	}
}

// Config returns the settings the app was created with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Kernel returns the solid kernel the app meshes with.
func (a *App) Kernel() kernel.Kernel {
	return a.kernel
}

// Evaluate runs source through the engine and full scene validation.
// Fatal engine failures (timeout, panic) are returned as err; everything
// the user can fix is reported in the result.
func (a *App) Evaluate(source string) (*Result, error) {
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		a.log.Error("evaluation failed", "err", err)
		return nil, errors.Wrap(err, "evaluate")
	}

	res := &Result{Errors: evalErrs}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			a.log.Debug("eval error", "line", e.Line, "msg", e.Message)
		}
		return res, nil
	}

	vr := scene.ValidateAll(s)
	for _, ve := range vr.Errors {
		res.Errors = append(res.Errors, engine.EvalError{
			Message: ve.Error(),
		})
	}
	for _, vw := range vr.Warnings {
		res.Warnings = append(res.Warnings, engine.EvalWarning{
			Message: vw.Message,
			NodeID:  vw.NodeID,
		})
		a.log.Warn("validation warning", "node", vw.NodeID.Short(), "msg", vw.Message)
	}
	if !vr.OK() {
		return res, nil
	}

	res.Scene = s
	a.log.Debug("evaluated", "items", s.NodeCount(), "warnings", len(res.Warnings))
	return res, nil
}

// Build evaluates source and meshes every item.
func (a *App) Build(source string) (*Result, error) {
	res, err := a.Evaluate(source)
	if err != nil || !res.OK() {
		return res, err
	}

	meshes, err := tessellate.Tessellate(res.Scene, a.kernel)
	if err != nil {
		a.log.Error("tessellation failed", "err", err)
		return nil, errors.Wrap(err, "build")
	}
	res.Meshes = meshes
	a.log.Info("built", "items", len(meshes))
	return res, nil
}

// MeshData converts the result's meshes to the JSON output format.
func (r *Result) MeshData() []MeshData {
	out := make([]MeshData, 0, len(r.Meshes))
	for i, m := range r.Meshes {
		out = append(out, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			ItemName: m.ItemName,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}
	return out
}

// WriteJSON writes the result's meshes as a JSON array.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(r.MeshData()); err != nil {
		return errors.Wrap(err, "failed to encode meshes")
	}
	return nil
}

// unsafeFileChars are replaced when item names become file names.
var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// stlFileName sanitizes label into a file name not yet in used. Labels
// that sanitize alike get numbered suffixes in scene order.
func stlFileName(label string, used map[string]bool) string {
	base := unsafeFileChars.ReplaceAllString(label, "_")
	name := base + ".stl"
	for i := 2; used[strings.ToLower(name)]; i++ {
		name = fmt.Sprintf("%s-%d.stl", base, i)
	}
	used[strings.ToLower(name)] = true
	return name
}

// ExportSTL evaluates source and writes one STL file per item into dir,
// returning the written paths in scene order.
func (a *App) ExportSTL(source, dir string) (*Result, []string, error) {
	res, err := a.Evaluate(source)
	if err != nil || !res.OK() {
		return res, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s", dir)
	}

	var paths []string
	used := make(map[string]bool)
	for _, n := range res.Scene.Items() {
		solid, err := tessellate.BuildSolid(a.kernel, n)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "export %s", n.Label())
		}
		if solid == nil {
			continue
		}
		path := filepath.Join(dir, stlFileName(n.Label(), used))
		if err := a.kernel.ExportSTL(solid, path); err != nil {
			return nil, nil, err
		}
		a.log.Info("wrote stl", "item", n.Label(), "path", path)
		paths = append(paths, path)
	}
	return res, paths, nil
}
