package kernel

import (
	"testing"

	"github.com/chazu/boxy/pkg/geom"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshExtent(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
		min, max := m.Extent()
		if min != [3]float64{} || max != [3]float64{} {
			t.Errorf("Extent() = %v, %v, want zero", min, max)
		}
	})
	t.Run("two vertices", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{-1, 2, 3, 4, -5, 6}}
		min, max := m.Extent()
		if min != [3]float64{-1, -5, 3} {
			t.Errorf("min = %v", min)
		}
		if max != [3]float64{4, 2, 6} {
			t.Errorf("max = %v", max)
		}
	})
}

// --- Compile-time interface check with a stub kernel ---

// stubSolid is a minimal Solid implementation for testing.
type stubSolid struct {
	minBB, maxBB [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return s.minBB, s.maxBB
}

// stubKernel is a minimal Kernel implementation that proves the interface
// is satisfiable. It only tracks axis-aligned extents.
type stubKernel struct{}

func (k *stubKernel) Box(x, y, z float64) (Solid, error) {
	return &stubSolid{
		minBB: [3]float64{-x / 2, -y / 2, -z / 2},
		maxBB: [3]float64{x / 2, y / 2, z / 2},
	}, nil
}

func (k *stubKernel) Union(a, b Solid) Solid {
	amin, amax := a.BoundingBox()
	bmin, bmax := b.BoundingBox()
	out := &stubSolid{}
	for i := 0; i < 3; i++ {
		out.minBB[i] = min(amin[i], bmin[i])
		out.maxBB[i] = max(amax[i], bmax[i])
	}
	return out
}

func (k *stubKernel) Difference(a, b Solid) Solid { return a }

func (k *stubKernel) Translate(s Solid, x, y, z float64) Solid {
	lo, hi := s.BoundingBox()
	d := [3]float64{x, y, z}
	out := &stubSolid{}
	for i := 0; i < 3; i++ {
		out.minBB[i] = lo[i] + d[i]
		out.maxBB[i] = hi[i] + d[i]
	}
	return out
}

func (k *stubKernel) Rotate(s Solid, x, y, z float64) Solid { return s }

func (k *stubKernel) Cut(s Solid, point geom.Point3, normal geom.Vector) Solid { return s }

func (k *stubKernel) Reflect(s Solid, axis geom.Axis, at float64) Solid { return s }

func (k *stubKernel) ToMesh(s Solid) (*Mesh, error) { return &Mesh{}, nil }

func (k *stubKernel) ExportSTL(s Solid, path string) error { return nil }

var _ Kernel = (*stubKernel)(nil)

func TestStubKernelComposes(t *testing.T) {
	var k Kernel = &stubKernel{}
	a, err := k.Box(2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	b := k.Translate(a, 10, 0, 0)
	lo, hi := k.Union(a, b).BoundingBox()
	if lo != [3]float64{-1, -1, -1} || hi != [3]float64{11, 1, 1} {
		t.Errorf("union extent = %v..%v", lo, hi)
	}
}
