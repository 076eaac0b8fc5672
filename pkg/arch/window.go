package arch

import (
	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
)

// WindowParams controls window generation. The placeholder marks the
// window's outer extent. The sill sits along the bottom and overhangs the
// front wall face by SillDepth; the frame stands on the sill and projects
// Skirt past both wall faces.
type WindowParams struct {
	Frame         float64 `json:"frame" yaml:"frame"`
	Skirt         float64 `json:"skirt" yaml:"skirt"`
	SillThickness float64 `json:"sill_thickness" yaml:"sill_thickness"`
	SillDepth     float64 `json:"sill_depth" yaml:"sill_depth"`
}

// DefaultWindowParams returns the stock window settings.
func DefaultWindowParams() WindowParams {
	return WindowParams{Frame: 10, Skirt: 2, SillThickness: 2, SillDepth: 4}
}

// Validate checks the parameters against a window size.
func (p WindowParams) Validate(size geom.Point3) error {
	if !(p.Frame > 0) {
		return &geom.InvalidRangeError{Field: "frame", Value: p.Frame, Reason: "must be positive"}
	}
	if !(p.Skirt >= 0) {
		return &geom.InvalidRangeError{Field: "skirt", Value: p.Skirt, Reason: "must not be negative"}
	}
	if !(p.SillThickness > 0) {
		return &geom.InvalidRangeError{Field: "sill thickness", Value: p.SillThickness, Reason: "must be positive"}
	}
	if !(p.SillDepth >= 0) {
		return &geom.InvalidRangeError{Field: "sill depth", Value: p.SillDepth, Reason: "must not be negative"}
	}
	if w := size.X - 2*p.Frame; !(w > 0) {
		return &geom.InvalidRangeError{Field: "glazing width", Value: w, Reason: "frame leaves no opening"}
	}
	if h := size.Y - p.SillThickness - 2*p.Frame; !(h > 0) {
		return &geom.InvalidRangeError{Field: "glazing height", Value: h, Reason: "frame and sill leave no opening"}
	}
	return nil
}

// WindowCreator builds a framed window with a sill.
type WindowCreator struct {
	Params WindowParams
}

func (c WindowCreator) Kind() Kind { return KindWindow }

// Create lays out the frame ring and sill. The result is pivoted at the
// bottom face.
func (c WindowCreator) Create(bd box.BoxData) (*Assembly, error) {
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
	sillTop := -h.Y + p.SillThickness
	face := h.Z + p.Skirt
	pierce := face + p.Frame

	frame := localPart(b, "frame",
		span(-h.X, sillTop, -face, h.X, h.Y, face),
		span(-h.X+p.Frame, sillTop+p.Frame, -pierce, h.X-p.Frame, h.Y-p.Frame, pierce),
	)
	sill := localPart(b, "sill", span(-h.X, -h.Y, -face, h.X, sillTop, face+p.SillDepth))

	attrs, err := baseAttributes(KindWindow, bd)
	if err != nil {
		return nil, err
	}
	attrs.Params["frame"] = p.Frame
	attrs.Params["skirt"] = p.Skirt
	attrs.Params["sill_thickness"] = p.SillThickness
	attrs.Params["sill_depth"] = p.SillDepth

	return &Assembly{
		Representation: Window{Box: bd, Params: p},
		Parts:          []Part{frame, sill},
		Markers: map[string]geom.Point3{
			"sill": sill.Bounds.Top(),
		},
		Attributes: attrs,
	}, nil
}
