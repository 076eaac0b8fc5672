package arch

import (
	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
	"github.com/pkg/errors"
)

// CreatorFor returns the creator that regenerates r with its own
// parameters.
func CreatorFor(r Representation) (Creator, error) {
	switch v := r.(type) {
	case Boxy:
		return BoxyCreator{}, nil
	case Door:
		return DoorCreator{Params: v.Params}, nil
	case Window:
		return WindowCreator{Params: v.Params}, nil
	case Staircase:
		return StaircaseCreator{Params: v.Params}, nil
	case Cube:
		return CubeCreator{}, nil
	}
	return nil, errors.Errorf("unsupported representation %T", r)
}

// Rebuild regenerates the assembly for an existing representation.
func Rebuild(r Representation) (*Assembly, error) {
	c, err := CreatorFor(r)
	if err != nil {
		return nil, err
	}
	bd, err := r.BoxData()
	if err != nil {
		return nil, err
	}
	return c.Create(bd)
}

// FromAttributes reconstructs a representation from written-back
// attributes and the item's current world translation. The stored pivot
// index may use the full 0-26 range, since it was written by a creator.
func FromAttributes(attrs Attributes, translation geom.Point3) (Representation, error) {
	pivot, err := box.AnchorFromIndex(attrs.Pivot)
	if err != nil {
		return nil, err
	}
	bd, err := box.NewBoxData(attrs.Size, translation, attrs.Rotation, pivot)
	if err != nil {
		return nil, err
	}

	switch attrs.CustomType {
	case KindBoxy:
		return Boxy{Box: bd}, nil
	case KindCube:
		return Cube{Box: bd}, nil
	case KindDoor:
		p := DefaultDoorParams()
		p.Frame = attrs.param("frame", p.Frame)
		p.Skirt = attrs.param("skirt", p.Skirt)
		p.Depth = attrs.param(attrDoorDepth, p.Depth)
		if p.Hinge, err = attrs.side(attrHingeSide, p.Hinge); err != nil {
			return nil, err
		}
		if p.Opening, err = attrs.side(attrOpeningSide, p.Opening); err != nil {
			return nil, err
		}
		return Door{Box: bd, Params: p}, nil
	case KindWindow:
		p := DefaultWindowParams()
		p.Frame = attrs.param("frame", p.Frame)
		p.Skirt = attrs.param("skirt", p.Skirt)
		p.SillThickness = attrs.param("sill_thickness", p.SillThickness)
		p.SillDepth = attrs.param("sill_depth", p.SillDepth)
		return Window{Box: bd, Params: p}, nil
	case KindStaircase:
		p := DefaultStaircaseParams()
		p.TargetRise = attrs.param("target_rise", p.TargetRise)
		if name, ok := attrs.Labels["axis"]; ok {
			if p.Axis, err = geom.ParseAxis(name); err != nil {
				return nil, err
			}
		}
		return Staircase{Box: bd, Params: p}, nil
	}
	return nil, errors.Errorf("unknown custom type %s", attrs.CustomType)
}

func (a Attributes) param(name string, fallback float64) float64 {
	if v, ok := a.Params[name]; ok {
		return v
	}
	return fallback
}

func (a Attributes) side(name string, fallback box.Side) (box.Side, error) {
	v, ok := a.Labels[name]
	if !ok {
		return fallback, nil
	}
	return box.ParseSide(v)
}
