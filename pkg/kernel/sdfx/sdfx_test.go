package sdfx

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/boxy/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func mustBox(t *testing.T, k *SdfxKernel, x, y, z float64) *sdfxSolid {
	t.Helper()
	s, err := k.Box(x, y, z)
	if err != nil {
		t.Fatalf("Box(%g, %g, %g) failed: %v", x, y, z, err)
	}
	return s.(*sdfxSolid)
}

// inside reports whether p lies strictly inside the solid.
func inside(s interface{ BoundingBox() (min, max [3]float64) }, p geom.Point3) bool {
	return s.(*sdfxSolid).s.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z}) < 0
}

func checkExtent(t *testing.T, got, want [3]float64, tol float64, label string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s[%d] = %f, expected ~%f", label, i, got[i], want[i])
		}
	}
}

func TestBox(t *testing.T) {
	k := NewWithCells(40)
	box := mustBox(t, k, 100, 50, 25)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	triCount := mesh.TriangleCount()
	if triCount == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
}

func TestBoxRejectsNegativeSize(t *testing.T) {
	k := New()
	if _, err := k.Box(-1, 1, 1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestBoundingBox(t *testing.T) {
	k := New()
	min, max := mustBox(t, k, 100, 50, 25).BoundingBox()

	const tol = 0.01
	checkExtent(t, min, [3]float64{-50, -25, -12.5}, tol, "min")
	checkExtent(t, max, [3]float64{50, 25, 12.5}, tol, "max")
}

func TestTranslate(t *testing.T) {
	k := New()
	translated := k.Translate(mustBox(t, k, 10, 10, 10), 100, 200, 300)
	min, max := translated.BoundingBox()

	const tol = 0.5
	checkExtent(t, min, [3]float64{95, 195, 295}, tol, "min")
	checkExtent(t, max, [3]float64{105, 205, 305}, tol, "max")
}

func TestRotate(t *testing.T) {
	k := New()
	box := mustBox(t, k, 100, 10, 10)

	// A long box along X rotated 90 degrees around Z should extend along Y instead.
	min, max := k.Rotate(box, 0, 0, 90).BoundingBox()

	const tol = 1.0
	if xExtent := max[0] - min[0]; math.Abs(xExtent-10) > tol {
		t.Errorf("rotated X extent = %f, expected ~10", xExtent)
	}
	if yExtent := max[1] - min[1]; math.Abs(yExtent-100) > tol {
		t.Errorf("rotated Y extent = %f, expected ~100", yExtent)
	}
}

func TestRotateMatchesPointRotation(t *testing.T) {
	k := New()
	// Offset box so the rotation direction is observable.
	box := k.Translate(mustBox(t, k, 2, 2, 2), 10, 0, 0)
	rot := geom.P3(0, 90, 0)
	rotated := k.Rotate(box, rot.X, rot.Y, rot.Z)

	moved := geom.ApplyEulerXYZRotation(geom.P3(10, 0, 0), rot)
	if !inside(rotated, moved) {
		t.Errorf("rotated solid does not contain %v", moved)
	}
	if inside(rotated, geom.P3(10, 0, 0)) {
		t.Error("rotated solid still contains the original center")
	}
}

func TestUnionAndDifference(t *testing.T) {
	k := New()
	a := mustBox(t, k, 50, 50, 50)
	b := k.Translate(mustBox(t, k, 50, 50, 50), 30, 0, 0)

	u := k.Union(a, b)
	if !inside(u, geom.P3(-20, 0, 0)) || !inside(u, geom.P3(50, 0, 0)) {
		t.Error("union should contain both operands")
	}

	hole := mustBox(t, k, 10, 10, 100)
	d := k.Difference(a, hole)
	if inside(d, geom.Origin) {
		t.Error("difference should remove the hole")
	}
	if !inside(d, geom.P3(20, 0, 0)) {
		t.Error("difference should keep material outside the hole")
	}
}

func TestCutDropsNormalSide(t *testing.T) {
	k := New()
	box := mustBox(t, k, 20, 20, 20)
	cut := k.Cut(box, geom.Origin, geom.XAxis)
	if inside(cut, geom.P3(5, 0, 0)) {
		t.Error("cut should drop the +x half")
	}
	if !inside(cut, geom.P3(-5, 0, 0)) {
		t.Error("cut should keep the -x half")
	}
}

func TestReflect(t *testing.T) {
	k := New()
	box := k.Translate(mustBox(t, k, 2, 2, 2), 5, 0, 0)

	mirrored := k.Reflect(box, geom.AxisX, 1)
	// Center 5 reflected about x=1 lands at -3.
	if !inside(mirrored, geom.P3(-3, 0, 0)) {
		t.Error("reflected solid should sit at x=-3")
	}
	if inside(mirrored, geom.P3(5, 0, 0)) {
		t.Error("reflected solid should leave x=5")
	}
	min, max := mirrored.BoundingBox()
	checkExtent(t, min, [3]float64{-4, -1, -1}, 0.01, "min")
	checkExtent(t, max, [3]float64{-2, 1, 1}, 0.01, "max")
}

func TestExportSTL(t *testing.T) {
	k := NewWithCells(20)
	path := filepath.Join(t.TempDir(), "box.stl")
	if err := k.ExportSTL(mustBox(t, k, 10, 10, 10), path); err != nil {
		t.Fatalf("ExportSTL failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("stl file is empty")
	}
}

func TestExportSTLReplacesExistingFile(t *testing.T) {
	k := NewWithCells(20)
	path := filepath.Join(t.TempDir(), "box.stl")
	if err := os.WriteFile(path, []byte("stale output from an earlier run"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := k.ExportSTL(mustBox(t, k, 10, 10, 10), path); err != nil {
		t.Fatalf("ExportSTL failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Binary STL: 80-byte header, uint32 count, 50 bytes per triangle.
	if len(data) < 84 || (len(data)-84)%50 != 0 {
		t.Fatalf("file is not a binary STL (%d bytes)", len(data))
	}
}

func TestExportSTLFailsWhenPathIsUnwritable(t *testing.T) {
	k := NewWithCells(20)
	// A non-empty directory in the way can be neither removed nor written.
	path := filepath.Join(t.TempDir(), "box.stl")
	if err := os.MkdirAll(filepath.Join(path, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := k.ExportSTL(mustBox(t, k, 10, 10, 10), path); err == nil {
		t.Fatal("expected an error when the path is a directory")
	}
}

func TestNewWithCellsDefault(t *testing.T) {
	if got := NewWithCells(0).Cells(); got != DefaultMeshCells {
		t.Errorf("Cells() = %d, want %d", got, DefaultMeshCells)
	}
}
