// Package kernel defines the abstract solid kernel interface. The sdfx
// backend implements it; tessellation only talks to this interface, so
// the backend can be swapped without touching the rest of the system.
package kernel

import "github.com/chazu/boxy/pkg/geom"

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract solid kernel interface.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) (Solid, error) // centered on the origin

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler XYZ angles in degrees

	// Mirror support
	Cut(s Solid, point geom.Point3, normal geom.Vector) Solid // drops the side normal points to
	Reflect(s Solid, axis geom.Axis, at float64) Solid        // mirror across the plane axis = at

	// Output
	ToMesh(s Solid) (*Mesh, error)
	ExportSTL(s Solid, path string) error
}
