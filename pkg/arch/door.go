package arch

import (
	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
)

// DoorParams controls door generation. The placeholder marks the doorway
// in the wall; Skirt is how far the frame's inner edge sits inside the
// placeholder on the sides and top, Frame is the frame width, and Depth
// is the thickness of the door leaf.
type DoorParams struct {
	Frame   float64  `json:"frame" yaml:"frame"`
	Skirt   float64  `json:"skirt" yaml:"skirt"`
	Depth   float64  `json:"depth" yaml:"depth"`
	Hinge   box.Side `json:"hinge" yaml:"hinge"`
	Opening box.Side `json:"opening" yaml:"opening"`
}

// Door attribute names, matching those on previously authored assets.
const (
	attrDoorDepth   = "door_depth"
	attrHingeSide   = "hinge_side"
	attrOpeningSide = "opening_side"
)

// DefaultDoorParams returns the stock door settings.
func DefaultDoorParams() DoorParams {
	return DoorParams{Frame: 10, Skirt: 2, Depth: 5, Hinge: box.SideLeft, Opening: box.SideFront}
}

// DoorWidth is the leaf width for a doorway of the given size.
func (p DoorParams) DoorWidth(size geom.Point3) float64 {
	return size.X - 2*p.Skirt
}

// DoorHeight is the leaf height for a doorway of the given size.
func (p DoorParams) DoorHeight(size geom.Point3) float64 {
	return size.Y - p.Skirt
}

// Validate checks the parameters against a doorway size.
func (p DoorParams) Validate(size geom.Point3) error {
	if p.Hinge != box.SideLeft && p.Hinge != box.SideRight {
		return &geom.InvalidAnchorError{Value: p.Hinge.String(), Reason: "door hinge must be left or right"}
	}
	if p.Opening != box.SideFront && p.Opening != box.SideBack {
		return &geom.InvalidAnchorError{Value: p.Opening.String(), Reason: "door opening must be front or back"}
	}
	if !(p.Frame > 0) {
		return &geom.InvalidRangeError{Field: "frame", Value: p.Frame, Reason: "must be positive"}
	}
	if !(p.Skirt >= 0) {
		return &geom.InvalidRangeError{Field: "skirt", Value: p.Skirt, Reason: "must not be negative"}
	}
	if !(p.Depth > 0) {
		return &geom.InvalidRangeError{Field: "door depth", Value: p.Depth, Reason: "must be positive"}
	}
	if w := p.DoorWidth(size); !(w > 0) {
		return &geom.InvalidRangeError{Field: "door width", Value: w, Reason: "skirt leaves no room for the door"}
	}
	if h := p.DoorHeight(size); !(h > 0) {
		return &geom.InvalidRangeError{Field: "door height", Value: h, Reason: "skirt leaves no room for the door"}
	}
	return nil
}

// hingeAnchor is the leaf edge the door swings about.
func (p DoorParams) hingeAnchor() box.Anchor {
	switch {
	case p.Hinge == box.SideLeft && p.Opening == box.SideFront:
		return box.AnchorE5
	case p.Hinge == box.SideLeft:
		return box.AnchorE4
	case p.Opening == box.SideFront:
		return box.AnchorE7
	default:
		return box.AnchorE6
	}
}

// DoorCreator builds a framed door in a placeholder doorway.
type DoorCreator struct {
	Params DoorParams
}

func (c DoorCreator) Kind() Kind { return KindDoor }

// Create lays out a frame (with the doorway cut through it) and a leaf
// flush with the opening side. The result is pivoted at the bottom face.
func (c DoorCreator) Create(bd box.BoxData) (*Assembly, error) {
	if err := bd.Validate(); err != nil {
		return nil, err
	}
	p := c.Params
	if err := p.Validate(bd.Size); err != nil {
		return nil, err
	}
	bd, err := bd.Repivot(box.AnchorF2)
	if err != nil {
		return nil, err
	}

	b := bd.Bounds()
	h := b.HalfExtents()
	inner := h.X - p.Skirt
	outer := inner + p.Frame
	top := h.Y - p.Skirt
	face := h.Z + p.Skirt
	pierce := face + p.Frame

	frame := localPart(b, "frame",
		span(-outer, -h.Y, -face, outer, top+p.Frame, face),
		span(-inner, -h.Y-p.Frame, -pierce, inner, top, pierce),
	)

	leafZ0, leafZ1 := h.Z-p.Depth, h.Z
	if p.Opening == box.SideBack {
		leafZ0, leafZ1 = -h.Z, -h.Z+p.Depth
	}
	leaf := localPart(b, "leaf", span(-inner, -h.Y, leafZ0, inner, top, leafZ1))

	rep := Door{Box: bd, Params: p}
	attrs, err := baseAttributes(KindDoor, bd)
	if err != nil {
		return nil, err
	}
	attrs.Params["frame"] = p.Frame
	attrs.Params["skirt"] = p.Skirt
	attrs.Params[attrDoorDepth] = p.Depth
	attrs.Labels[attrHingeSide] = p.Hinge.String()
	attrs.Labels[attrOpeningSide] = p.Opening.String()

	return &Assembly{
		Representation: rep,
		Parts:          []Part{frame, leaf},
		Markers: map[string]geom.Point3{
			"hinge": leaf.Bounds.AnchorPosition(p.hingeAnchor()),
		},
		Attributes: attrs,
	}, nil
}
