package box

import (
	"fmt"
	"strings"

	"github.com/chazu/boxy/pkg/geom"
)

// Side is one of the six faces of a box, or its center.
type Side int

const (
	SideCenter Side = iota
	SideLeft        // -X
	SideRight       // +X
	SideBottom      // -Y
	SideTop         // +Y
	SideBack        // -Z
	SideFront       // +Z
)

func (s Side) String() string {
	switch s {
	case SideCenter:
		return "center"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	case SideBack:
		return "back"
	case SideFront:
		return "front"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is one of the seven named sides.
func (s Side) Valid() bool {
	return s >= SideCenter && s <= SideFront
}

// Opposite returns the side across the center. Center is its own opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideBottom:
		return SideTop
	case SideTop:
		return SideBottom
	case SideBack:
		return SideFront
	case SideFront:
		return SideBack
	}
	return s
}

// Sides lists the seven sides, center first.
func Sides() []Side {
	return []Side{SideCenter, SideLeft, SideRight, SideBottom, SideTop, SideBack, SideFront}
}

// ParseSide converts a side name such as "top" into a Side.
func ParseSide(name string) (Side, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Sides() {
		if s.String() == n {
			return s, nil
		}
	}
	return 0, &geom.InvalidAnchorError{Value: name, Reason: "not a side name"}
}

// SideToAnchor maps a side onto its basic anchor. It is total over valid
// sides.
func SideToAnchor(s Side) (Anchor, error) {
	switch s {
	case SideCenter:
		return AnchorC, nil
	case SideLeft:
		return AnchorF0, nil
	case SideRight:
		return AnchorF1, nil
	case SideBottom:
		return AnchorF2, nil
	case SideTop:
		return AnchorF3, nil
	case SideBack:
		return AnchorF4, nil
	case SideFront:
		return AnchorF5, nil
	}
	return 0, &geom.InvalidAnchorError{Value: s.String(), Reason: "unknown side"}
}

// AnchorToSide maps a basic anchor (center or face) back onto its side.
// Edge and vertex anchors have no side.
func AnchorToSide(a Anchor) (Side, error) {
	switch a {
	case AnchorC:
		return SideCenter, nil
	case AnchorF0:
		return SideLeft, nil
	case AnchorF1:
		return SideRight, nil
	case AnchorF2:
		return SideBottom, nil
	case AnchorF3:
		return SideTop, nil
	case AnchorF4:
		return SideBack, nil
	case AnchorF5:
		return SideFront, nil
	}
	return 0, &geom.InvalidAnchorError{Value: a.String(), Reason: "only center and face anchors map to a side"}
}
