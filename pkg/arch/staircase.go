package arch

import (
	"fmt"
	"math"

	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
)

// StaircaseParams controls staircase generation. The flight climbs the
// placeholder's full height, running along Axis (x or z) from the
// positive face towards the negative one.
type StaircaseParams struct {
	TargetRise float64   `json:"target_rise" yaml:"target_rise"`
	Axis       geom.Axis `json:"axis" yaml:"axis"`
}

// DefaultStaircaseParams returns the stock staircase settings.
func DefaultStaircaseParams() StaircaseParams {
	return StaircaseParams{TargetRise: 20, Axis: geom.AxisZ}
}

// StairLayout is the derived step geometry for a given height and run.
type StairLayout struct {
	Count int     // number of risers; the top riser lands on the floor above
	Rise  float64 // height of each riser
	Tread float64 // depth of each step
}

// Layout derives the step count, rise and tread for a placeholder size.
func (p StaircaseParams) Layout(size geom.Point3) (StairLayout, error) {
	if !(p.TargetRise > 0) {
		return StairLayout{}, &geom.InvalidRangeError{Field: "target rise", Value: p.TargetRise, Reason: "must be positive"}
	}
	if p.Axis != geom.AxisX && p.Axis != geom.AxisZ {
		return StairLayout{}, &geom.InvalidAxisError{Value: p.Axis.String()}
	}
	count := int(math.RoundToEven(size.Y / p.TargetRise))
	if count < 2 {
		return StairLayout{}, &geom.InvalidRangeError{
			Field:  "step count",
			Value:  float64(count),
			Reason: fmt.Sprintf("height %g over target rise %g needs at least 2 risers", size.Y, p.TargetRise),
		}
	}
	return StairLayout{
		Count: count,
		Rise:  size.Y / float64(count),
		Tread: size.Component(p.Axis) / float64(count-1),
	}, nil
}

// StaircaseCreator builds a flight of solid steps.
type StaircaseCreator struct {
	Params StaircaseParams
}

func (c StaircaseCreator) Kind() Kind { return KindStaircase }

// Create lays out count-1 stacked steps. Step i spans tread i along the
// run and rises from the floor to (i+1) risers. The result is pivoted at
// the bottom face.
func (c StaircaseCreator) Create(bd box.BoxData) (*Assembly, error) {
	if err := bd.Validate(); err != nil {
		return nil, err
	}
	p := c.Params
	layout, err := p.Layout(bd.Size)
	if err != nil {
		return nil, err
	}
	bd, err = bd.Repivot(box.AnchorF2)
	if err != nil {
		return nil, err
	}

	b := bd.Bounds()
	h := b.HalfExtents()
	run := h.Component(p.Axis)
	across := geom.AxisX
	if p.Axis == geom.AxisX {
		across = geom.AxisZ
	}
	w := h.Component(across)

	parts := make([]Part, 0, layout.Count-1)
	for i := 0; i < layout.Count-1; i++ {
		lo := geom.Point3{Y: -h.Y}.
			WithComponent(p.Axis, run-float64(i+1)*layout.Tread).
			WithComponent(across, -w)
		hi := geom.Point3{Y: -h.Y + float64(i+1)*layout.Rise}.
			WithComponent(p.Axis, run-float64(i)*layout.Tread).
			WithComponent(across, w)
		parts = append(parts, localPart(b, fmt.Sprintf("step%02d", i), [2]geom.Point3{lo, hi}))
	}

	attrs, err := baseAttributes(KindStaircase, bd)
	if err != nil {
		return nil, err
	}
	attrs.Params["target_rise"] = p.TargetRise
	attrs.Params["count"] = float64(layout.Count)
	attrs.Params["rise"] = layout.Rise
	attrs.Params["tread"] = layout.Tread
	attrs.Labels["axis"] = p.Axis.String()

	return &Assembly{
		Representation: Staircase{Box: bd, Params: p},
		Parts:          parts,
		Markers: map[string]geom.Point3{
			"landing": b.AnchorPosition(box.AnchorF3),
		},
		Attributes: attrs,
	}, nil
}
