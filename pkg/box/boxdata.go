package box

import (
	"fmt"
	"math"

	"github.com/chazu/boxy/pkg/geom"
)

// BoxData is the canonical description of a placeholder box. Translation
// is the world position of PivotAnchor, not of the center; use Center or
// Bounds for center-based queries.
type BoxData struct {
	Size        geom.Point3 `json:"size" yaml:"size"`
	Translation geom.Point3 `json:"translation" yaml:"translation"`
	Rotation    geom.Point3 `json:"rotation" yaml:"rotation"`
	PivotAnchor Anchor      `json:"pivot_anchor" yaml:"pivot_anchor"`
	Scale       geom.Point3 `json:"scale" yaml:"scale"`
}

// NewBoxData builds and validates a BoxData with unit scale.
func NewBoxData(size, translation, rotation geom.Point3, pivot Anchor) (BoxData, error) {
	bd := BoxData{
		Size:        size,
		Translation: translation,
		Rotation:    rotation,
		PivotAnchor: pivot,
		Scale:       geom.Uniform(1),
	}
	if err := bd.Validate(); err != nil {
		return BoxData{}, err
	}
	return bd, nil
}

// BoxFromCenter builds the BoxData whose box is centered at center and
// whose translation is the world position of pivot.
func BoxFromCenter(size, center, rotation geom.Point3, pivot Anchor) (BoxData, error) {
	return BoxFromBounds(Bounds{Size: size, Position: center, Rotation: rotation, Scale: geom.Uniform(1)}, pivot)
}

// BoxFromBounds re-expresses an oriented box as BoxData pivoted at pivot.
func BoxFromBounds(b Bounds, pivot Anchor) (BoxData, error) {
	if !pivot.Valid() {
		return BoxData{}, &geom.InvalidAnchorError{Value: pivot.String(), Reason: "unknown anchor"}
	}
	bd, err := NewBoxData(b.Size, b.AnchorPosition(pivot), b.Rotation, pivot)
	if err != nil {
		return BoxData{}, err
	}
	if !b.Scale.IsZero() {
		bd.Scale = b.Scale
	}
	return bd, nil
}

// BoxAroundPoints fits a box around points in a frame turned heading
// degrees about +Y, pivoted at pivot. The points are measured in that
// frame about their midpoint, and the pivot is turned back into world
// space the same way.
func BoxAroundPoints(points []geom.Point3, heading float64, pivot Anchor) (BoxData, error) {
	if !pivot.Valid() {
		return BoxData{}, &geom.InvalidAnchorError{Value: pivot.String(), Reason: "unknown anchor"}
	}
	origin, err := geom.Midpoint(points...)
	if err != nil {
		return BoxData{}, err
	}
	rel := make([]geom.Point3, len(points))
	for i, p := range points {
		rel[i] = p.Sub(origin)
	}
	span, err := geom.BoundsFromPoints(rel, -heading)
	if err != nil {
		return BoxData{}, err
	}
	size := span.Size()
	local := span.Midpoint().Add(pivot.LocalOffset(size))
	return NewBoxData(size, origin.Add(geom.RotateAboutY(local, heading)), geom.P3(0, heading, 0), pivot)
}

// Validate checks that every size component is positive and the pivot is
// a known anchor.
func (bd BoxData) Validate() error {
	for _, a := range []geom.Axis{geom.AxisX, geom.AxisY, geom.AxisZ} {
		v := bd.Size.Component(a)
		if !(v > 0) || math.IsInf(v, 0) {
			return &geom.InvalidRangeError{Field: fmt.Sprintf("size.%s", a), Value: v, Reason: "must be positive"}
		}
	}
	if !bd.PivotAnchor.Valid() {
		return &geom.InvalidAnchorError{Value: bd.PivotAnchor.String(), Reason: "unknown anchor"}
	}
	return nil
}

// PivotToCenterOffset returns the world-space vector from the pivot to
// the center.
func (bd BoxData) PivotToCenterOffset() geom.Vector {
	return geom.ApplyEulerXYZRotation(bd.PivotAnchor.LocalOffset(bd.Size).Neg(), bd.Rotation)
}

// Center resolves the world center of the box.
func (bd BoxData) Center() geom.Point3 {
	return bd.Translation.Add(bd.PivotToCenterOffset())
}

// Bounds returns the center-based view of the same box.
func (bd BoxData) Bounds() Bounds {
	return Bounds{
		Size:     bd.Size,
		Position: bd.Center(),
		Rotation: bd.Rotation,
		Scale:    bd.Scale,
	}
}

// AnchorPosition returns the world position of any anchor on the box.
func (bd BoxData) AnchorPosition(a Anchor) geom.Point3 {
	return bd.Bounds().AnchorPosition(a)
}

// Repivot returns the same box with a new pivot anchor; the translation
// moves to that anchor's world position.
func (bd BoxData) Repivot(a Anchor) (BoxData, error) {
	if !a.Valid() {
		return BoxData{}, &geom.InvalidAnchorError{Value: a.String(), Reason: "unknown anchor"}
	}
	out := bd
	out.Translation = bd.AnchorPosition(a)
	out.PivotAnchor = a
	return out, nil
}

// Reorient turns the box a whole number of quarter turns about axis. The
// pivot's world position is kept; on odd quarter turns the two sizes
// perpendicular to axis are exchanged, so an unrotated box keeps its world
// extent while its local frame turns.
func (bd BoxData) Reorient(axis geom.Axis, degrees float64) (BoxData, error) {
	if !axis.Valid() {
		return BoxData{}, &geom.InvalidAxisError{Value: axis.String()}
	}
	turns := degrees / 90
	if turns != math.Trunc(turns) {
		return BoxData{}, &geom.InvalidRangeError{Field: "reorient angle", Value: degrees, Reason: "must be a multiple of 90"}
	}
	out := bd
	if int(math.Abs(turns))%2 == 1 {
		s := bd.Size
		switch axis {
		case geom.AxisX:
			out.Size = geom.Point3{X: s.X, Y: s.Z, Z: s.Y}
		case geom.AxisY:
			out.Size = geom.Point3{X: s.Z, Y: s.Y, Z: s.X}
		case geom.AxisZ:
			out.Size = geom.Point3{X: s.Y, Y: s.X, Z: s.Z}
		}
	}
	out.Rotation = bd.Rotation.WithComponent(axis, bd.Rotation.Component(axis)+degrees)
	return out, nil
}
