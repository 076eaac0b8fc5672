package box

import (
	"fmt"

	"github.com/chazu/boxy/pkg/geom"
)

// SliceRotation returns the Euler rotation that turns a cut plane's +Z
// normal onto +axis (positive) or -axis. The side the normal points to is
// the side that gets cut away.
func SliceRotation(axis geom.Axis, positive bool) (geom.Point3, error) {
	p := 0.0
	if positive {
		p = 1
	}
	switch axis {
	case geom.AxisX:
		return geom.Point3{Y: p*180 - 90}, nil
	case geom.AxisY:
		return geom.Point3{X: 90 - p*180}, nil
	case geom.AxisZ:
		return geom.Point3{Y: 180 - p*180}, nil
	}
	return geom.Point3{}, &geom.InvalidAxisError{Value: axis.String()}
}

// MirrorDirection encodes a mirror as 2*axis + side: even codes copy
// geometry towards +axis, odd codes towards -axis.
type MirrorDirection int

// MirrorDirectionFor returns the direction code for axis and side flag.
func MirrorDirectionFor(axis geom.Axis, positive bool) (MirrorDirection, error) {
	if !axis.Valid() {
		return 0, &geom.InvalidAxisError{Value: axis.String()}
	}
	d := MirrorDirection(2 * int(axis))
	if positive {
		d++
	}
	return d, nil
}

// Axis returns the axis the mirror acts along.
func (d MirrorDirection) Axis() geom.Axis {
	return geom.Axis(int(d) / 2)
}

// TowardPositive reports whether the copy lands on the +axis side.
func (d MirrorDirection) TowardPositive() bool {
	return int(d)%2 == 0
}

func (d MirrorDirection) String() string {
	if d < 0 || d > 5 {
		return fmt.Sprintf("MirrorDirection(%d)", int(d))
	}
	if d.TowardPositive() {
		return "+" + d.Axis().String()
	}
	return "-" + d.Axis().String()
}

// MarshalText writes the direction as a signed axis, such as "-x".
func (d MirrorDirection) MarshalText() ([]byte, error) {
	if d < 0 || d > 5 {
		return nil, &geom.InvalidAxisError{Value: d.String()}
	}
	return []byte(d.String()), nil
}

// MirrorPlan describes a slice-then-mirror operation that makes geometry
// symmetric about the plane through Pivot perpendicular to Axis.
// KeepPositive selects which half survives the slice and is copied across.
type MirrorPlan struct {
	Axis          geom.Axis       `json:"axis" yaml:"axis"`
	KeepPositive  bool            `json:"keep_positive" yaml:"keep_positive"`
	Pivot         geom.Point3     `json:"pivot" yaml:"pivot"`
	SliceRotation geom.Point3     `json:"slice_rotation" yaml:"slice_rotation"`
	Direction     MirrorDirection `json:"direction" yaml:"direction"`
}

// PlanMirror builds the plan for keeping the positive (or negative) half
// along axis and mirroring it onto the other half.
func PlanMirror(axis geom.Axis, keepPositive bool, pivot geom.Point3) (MirrorPlan, error) {
	rot, err := SliceRotation(axis, !keepPositive)
	if err != nil {
		return MirrorPlan{}, err
	}
	dir, err := MirrorDirectionFor(axis, keepPositive)
	if err != nil {
		return MirrorPlan{}, err
	}
	return MirrorPlan{
		Axis:          axis,
		KeepPositive:  keepPositive,
		Pivot:         pivot,
		SliceRotation: rot,
		Direction:     dir,
	}, nil
}

// CutNormal is the world normal of the slice plane; geometry on the side
// it points to is removed.
func (m MirrorPlan) CutNormal() geom.Vector {
	return geom.ApplyEulerXYZRotation(geom.ZAxis, m.SliceRotation)
}

// Reflect mirrors p across the plane through Pivot perpendicular to Axis.
func (m MirrorPlan) Reflect(p geom.Point3) geom.Point3 {
	c := m.Pivot.Component(m.Axis)
	return p.WithComponent(m.Axis, 2*c-p.Component(m.Axis))
}

// Keeps reports whether p lies on the surviving side of the slice plane.
func (m MirrorPlan) Keeps(p geom.Point3) bool {
	return p.Sub(m.Pivot).Dot(m.CutNormal()) <= 0
}
