package arch

import (
	"github.com/chazu/boxy/pkg/box"
)

// CubeCreator turns a placeholder into one solid box, keeping its pivot.
type CubeCreator struct{}

func (CubeCreator) Kind() Kind { return KindCube }

func (CubeCreator) Create(bd box.BoxData) (*Assembly, error) {
	if err := bd.Validate(); err != nil {
		return nil, err
	}
	attrs, err := baseAttributes(KindCube, bd)
	if err != nil {
		return nil, err
	}
	return &Assembly{
		Representation: Cube{Box: bd},
		Parts:          []Part{{Name: "cube", Bounds: bd.Bounds()}},
		Attributes:     attrs,
	}, nil
}

// BoxyCreator keeps a placeholder as it is. Its single part is the
// placeholder volume, so placeholders can still be previewed.
type BoxyCreator struct{}

func (BoxyCreator) Kind() Kind { return KindBoxy }

func (BoxyCreator) Create(bd box.BoxData) (*Assembly, error) {
	if err := bd.Validate(); err != nil {
		return nil, err
	}
	attrs, err := baseAttributes(KindBoxy, bd)
	if err != nil {
		return nil, err
	}
	return &Assembly{
		Representation: Boxy{Box: bd},
		Parts:          []Part{{Name: "boxy", Bounds: bd.Bounds()}},
		Attributes:     attrs,
	}, nil
}
