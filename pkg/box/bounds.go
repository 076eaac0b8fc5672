package box

import (
	"math"

	"github.com/chazu/boxy/pkg/geom"
)

// Bounds is an oriented box described by its world center. Size is the
// full extent along each local axis; Rotation is Euler XYZ in degrees.
// Scale is carried through for write-back and does not enter any of the
// position calculations.
type Bounds struct {
	Size     geom.Point3 `json:"size" yaml:"size"`
	Position geom.Point3 `json:"position" yaml:"position"`
	Rotation geom.Point3 `json:"rotation" yaml:"rotation"`
	Scale    geom.Point3 `json:"scale" yaml:"scale"`
}

// HalfExtents returns Size / 2.
func (b Bounds) HalfExtents() geom.Point3 {
	return b.Size.Scale(0.5)
}

// Center is the world center of the box (same as Position).
func (b Bounds) Center() geom.Point3 {
	return b.Position
}

// AnchorPosition returns the world position of anchor a. Every face,
// edge and vertex query goes through here.
func (b Bounds) AnchorPosition(a Anchor) geom.Point3 {
	return b.Position.Add(geom.ApplyEulerXYZRotation(a.Offset(b.HalfExtents()), b.Rotation))
}

func (b Bounds) Left() geom.Point3   { return b.AnchorPosition(AnchorF0) }
func (b Bounds) Right() geom.Point3  { return b.AnchorPosition(AnchorF1) }
func (b Bounds) Bottom() geom.Point3 { return b.AnchorPosition(AnchorF2) }
func (b Bounds) Top() geom.Point3    { return b.AnchorPosition(AnchorF3) }
func (b Bounds) Back() geom.Point3   { return b.AnchorPosition(AnchorF4) }
func (b Bounds) Front() geom.Point3  { return b.AnchorPosition(AnchorF5) }

// Pivot returns the world position of the given side's face center, or
// the box center for SideCenter.
func (b Bounds) Pivot(s Side) (geom.Point3, error) {
	a, err := SideToAnchor(s)
	if err != nil {
		return geom.Point3{}, err
	}
	return b.AnchorPosition(a), nil
}

// Corners returns the eight vertices in v0..v7 order.
func (b Bounds) Corners() [8]geom.Point3 {
	var out [8]geom.Point3
	for i := range out {
		out[i] = b.AnchorPosition(AnchorV0 + Anchor(i))
	}
	return out
}

// AxisAligned returns the world axis-aligned min/max pair enclosing the
// rotated box.
func (b Bounds) AxisAligned() geom.Point3Pair {
	c := b.Corners()
	// Eight corners are never empty, so the error is impossible.
	pp, _ := geom.BoundsFromPoints(c[:], 0)
	return pp
}

// Local returns a box of the given size whose center sits at offset in
// this box's local frame. The result shares this box's rotation, so parts
// laid out against the placeholder follow it when it is rotated.
func (b Bounds) Local(offset geom.Vector, size geom.Point3) Bounds {
	return Bounds{
		Size:     size,
		Position: b.Position.Add(geom.ApplyEulerXYZRotation(offset, b.Rotation)),
		Rotation: b.Rotation,
		Scale:    b.Scale,
	}
}

// LocalSpan is Local for a box given by its local min and max corners.
func (b Bounds) LocalSpan(min, max geom.Point3) Bounds {
	span := geom.Point3Pair{A: min, B: max}
	return b.Local(span.Midpoint(), span.Size())
}

// ToLocal maps a world point into this box's local frame, relative to its
// center.
func (b Bounds) ToLocal(world geom.Point3) geom.Vector {
	return geom.InverseEulerXYZRotation(world.Sub(b.Position), b.Rotation)
}

// DetectAnchor returns the anchor whose world position lies within tol of
// world on every local axis.
func (b Bounds) DetectAnchor(world geom.Point3, tol float64) (Anchor, error) {
	local := b.ToLocal(world)
	for _, a := range Anchors() {
		if a.Offset(b.HalfExtents()).ApproxEqual(local, tol) {
			return a, nil
		}
	}
	return 0, &geom.InvalidAnchorError{Value: world.String(), Reason: "point is not at any anchor"}
}

// Contains reports whether world lies inside the box, within tol.
func (b Bounds) Contains(world geom.Point3, tol float64) bool {
	local := b.ToLocal(world)
	h := b.HalfExtents()
	return math.Abs(local.X) <= h.X+tol && math.Abs(local.Y) <= h.Y+tol && math.Abs(local.Z) <= h.Z+tol
}
