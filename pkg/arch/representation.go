package arch

import (
	"fmt"
	"strings"

	"github.com/chazu/boxy/pkg/box"
	"github.com/pkg/errors"
)

// Kind names the representation an item currently has.
type Kind int

const (
	KindBoxy Kind = iota
	KindDoor
	KindWindow
	KindStaircase
	KindCube
)

func (k Kind) String() string {
	switch k {
	case KindBoxy:
		return "boxy"
	case KindDoor:
		return "door"
	case KindWindow:
		return "window"
	case KindStaircase:
		return "staircase"
	case KindCube:
		return "cube"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a custom-type label back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boxy":
		return KindBoxy, nil
	case "door":
		return KindDoor, nil
	case "window":
		return KindWindow, nil
	case "staircase":
		return KindStaircase, nil
	case "cube":
		return KindCube, nil
	}
	return 0, errors.Errorf("unknown custom type %q", s)
}

// MarshalText writes the custom-type label.
func (k Kind) MarshalText() ([]byte, error) {
	if k < KindBoxy || k > KindCube {
		return nil, errors.Errorf("unknown custom type %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText reads a custom-type label.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Representation is the closed set of forms an item can take. Every form
// can report the canonical box it occupies; creators only ever consume
// that box.
type Representation interface {
	Kind() Kind
	BoxData() (box.BoxData, error)
	representation() // marker method restricting implementations to this package
}

// Boxy is a bare placeholder box.
type Boxy struct {
	Box box.BoxData `json:"box" yaml:"box"`
}

// Door is a finished door, pivoted at the bottom of its doorway.
type Door struct {
	Box    box.BoxData `json:"box" yaml:"box"`
	Params DoorParams  `json:"params" yaml:"params"`
}

// Window is a finished window, pivoted at the bottom of its opening.
type Window struct {
	Box    box.BoxData  `json:"box" yaml:"box"`
	Params WindowParams `json:"params" yaml:"params"`
}

// Staircase is a finished flight of steps, pivoted at the bottom.
type Staircase struct {
	Box    box.BoxData     `json:"box" yaml:"box"`
	Params StaircaseParams `json:"params" yaml:"params"`
}

// Cube is a plain solid box.
type Cube struct {
	Box box.BoxData `json:"box" yaml:"box"`
}

func (Boxy) Kind() Kind      { return KindBoxy }
func (Door) Kind() Kind      { return KindDoor }
func (Window) Kind() Kind    { return KindWindow }
func (Staircase) Kind() Kind { return KindStaircase }
func (Cube) Kind() Kind      { return KindCube }

func (r Boxy) BoxData() (box.BoxData, error)      { return r.Box, r.Box.Validate() }
func (r Door) BoxData() (box.BoxData, error)      { return r.Box, r.Box.Validate() }
func (r Window) BoxData() (box.BoxData, error)    { return r.Box, r.Box.Validate() }
func (r Staircase) BoxData() (box.BoxData, error) { return r.Box, r.Box.Validate() }
func (r Cube) BoxData() (box.BoxData, error)      { return r.Box, r.Box.Validate() }

func (Boxy) representation()      {}
func (Door) representation()      {}
func (Window) representation()    {}
func (Staircase) representation() {}
func (Cube) representation()      {}

// ToBoxy turns any representation back into a placeholder occupying the
// same box, pivoted at pivot.
func ToBoxy(r Representation, pivot box.Anchor) (Boxy, error) {
	bd, err := r.BoxData()
	if err != nil {
		return Boxy{}, err
	}
	bd, err = bd.Repivot(pivot)
	if err != nil {
		return Boxy{}, err
	}
	return Boxy{Box: bd}, nil
}

// ToCube turns any representation into a solid cube occupying the same
// box, pivoted at pivot.
func ToCube(r Representation, pivot box.Anchor) (Cube, error) {
	b, err := ToBoxy(r, pivot)
	if err != nil {
		return Cube{}, err
	}
	return Cube{Box: b.Box}, nil
}
