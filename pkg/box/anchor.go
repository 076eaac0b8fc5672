package box

import (
	"fmt"
	"strings"

	"github.com/chazu/boxy/pkg/geom"
)

// Anchor addresses one of 27 reference points on a box independent of
// its size: the center, six face centers, twelve edge midpoints and eight
// vertices.
type Anchor int

const (
	AnchorC Anchor = iota

	AnchorF0 // left   (-x)
	AnchorF1 // right  (+x)
	AnchorF2 // bottom (-y)
	AnchorF3 // top    (+y)
	AnchorF4 // back   (-z)
	AnchorF5 // front  (+z)

	AnchorE0  // bottom back
	AnchorE1  // bottom front
	AnchorE2  // top back
	AnchorE3  // top front
	AnchorE4  // left back
	AnchorE5  // left front
	AnchorE6  // right back
	AnchorE7  // right front
	AnchorE8  // left bottom
	AnchorE9  // left top
	AnchorE10 // right bottom
	AnchorE11 // right top

	AnchorV0 // left bottom back
	AnchorV1 // left bottom front
	AnchorV2 // left top back
	AnchorV3 // left top front
	AnchorV4 // right bottom back
	AnchorV5 // right bottom front
	AnchorV6 // right top back
	AnchorV7 // right top front

	anchorCount
)

// AnchorKind classifies an anchor by how many axes its offset uses.
type AnchorKind int

const (
	KindCenter AnchorKind = iota
	KindFace
	KindEdge
	KindVertex
)

func (k AnchorKind) String() string {
	switch k {
	case KindCenter:
		return "center"
	case KindFace:
		return "face"
	case KindEdge:
		return "edge"
	case KindVertex:
		return "vertex"
	default:
		return fmt.Sprintf("AnchorKind(%d)", int(k))
	}
}

// anchorSigns holds each anchor's offset from the center in half-extent
// units.
var anchorSigns = [anchorCount][3]float64{
	AnchorC: {0, 0, 0},

	AnchorF0: {-1, 0, 0},
	AnchorF1: {1, 0, 0},
	AnchorF2: {0, -1, 0},
	AnchorF3: {0, 1, 0},
	AnchorF4: {0, 0, -1},
	AnchorF5: {0, 0, 1},

	AnchorE0:  {0, -1, -1},
	AnchorE1:  {0, -1, 1},
	AnchorE2:  {0, 1, -1},
	AnchorE3:  {0, 1, 1},
	AnchorE4:  {-1, 0, -1},
	AnchorE5:  {-1, 0, 1},
	AnchorE6:  {1, 0, -1},
	AnchorE7:  {1, 0, 1},
	AnchorE8:  {-1, -1, 0},
	AnchorE9:  {-1, 1, 0},
	AnchorE10: {1, -1, 0},
	AnchorE11: {1, 1, 0},

	AnchorV0: {-1, -1, -1},
	AnchorV1: {-1, -1, 1},
	AnchorV2: {-1, 1, -1},
	AnchorV3: {-1, 1, 1},
	AnchorV4: {1, -1, -1},
	AnchorV5: {1, -1, 1},
	AnchorV6: {1, 1, -1},
	AnchorV7: {1, 1, 1},
}

// Anchors returns all 27 anchors: center, faces, edges, vertices.
func Anchors() []Anchor {
	all := make([]Anchor, anchorCount)
	for i := range all {
		all[i] = Anchor(i)
	}
	return all
}

// BasicAnchors returns the center and six face anchors.
func BasicAnchors() []Anchor {
	return []Anchor{AnchorC, AnchorF0, AnchorF1, AnchorF2, AnchorF3, AnchorF4, AnchorF5}
}

// Valid reports whether a is one of the 27 anchors.
func (a Anchor) Valid() bool {
	return a >= AnchorC && a < anchorCount
}

func (a Anchor) String() string {
	switch {
	case a == AnchorC:
		return "c"
	case a >= AnchorF0 && a <= AnchorF5:
		return fmt.Sprintf("f%d", int(a-AnchorF0))
	case a >= AnchorE0 && a <= AnchorE11:
		return fmt.Sprintf("e%d", int(a-AnchorE0))
	case a >= AnchorV0 && a <= AnchorV7:
		return fmt.Sprintf("v%d", int(a-AnchorV0))
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// Kind reports whether a is the center, a face, an edge or a vertex.
func (a Anchor) Kind() AnchorKind {
	switch {
	case a >= AnchorF0 && a <= AnchorF5:
		return KindFace
	case a >= AnchorE0 && a <= AnchorE11:
		return KindEdge
	case a >= AnchorV0 && a <= AnchorV7:
		return KindVertex
	}
	return KindCenter
}

// IsBasic reports whether a belongs to the seven-value legacy vocabulary
// (center and faces).
func (a Anchor) IsBasic() bool {
	return a.Valid() && (a == AnchorC || a.Kind() == KindFace)
}

// Signs returns the anchor's offset in half-extent units.
func (a Anchor) Signs() geom.Point3 {
	if !a.Valid() {
		return geom.Origin
	}
	s := anchorSigns[a]
	return geom.Point3{X: s[0], Y: s[1], Z: s[2]}
}

// Offset returns the anchor's position relative to the box center in the
// box's local (unrotated) frame.
func (a Anchor) Offset(halfExtents geom.Point3) geom.Vector {
	return a.Signs().Mul(halfExtents)
}

// LocalOffset is Offset for a full box size.
func (a Anchor) LocalOffset(size geom.Point3) geom.Vector {
	return a.Offset(size.Scale(0.5))
}

// Opposite returns the anchor reflected through the center.
func (a Anchor) Opposite() Anchor {
	want := a.Signs().Neg()
	for _, b := range Anchors() {
		if b.Signs() == want {
			return b
		}
	}
	return a
}

// ParseAnchor accepts an anchor name (c, f0..f5, e0..e11, v0..v7) or a
// side name (center, left, ..., front).
func ParseAnchor(name string) (Anchor, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Anchors() {
		if a.String() == n {
			return a, nil
		}
	}
	if s, err := ParseSide(n); err == nil {
		return SideToAnchor(s)
	}
	return 0, &geom.InvalidAnchorError{Value: name, Reason: "unknown anchor name"}
}

// MarshalText writes the anchor name.
func (a Anchor) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &geom.InvalidAnchorError{Value: a.String(), Reason: "unknown anchor"}
	}
	return []byte(a.String()), nil
}

// UnmarshalText reads an anchor or side name.
func (a *Anchor) UnmarshalText(b []byte) error {
	parsed, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ---------------------------------------------------------------------------
// Legacy numeric pivot attribute
// ---------------------------------------------------------------------------

// legacyIndex is the historical numbering stored in the pivot attribute
// of authored assets. Indices 0-6 cover the basic anchors; 7-26 the
// advanced ones.
var legacyIndex = [anchorCount]Anchor{
	0: AnchorF2,
	1: AnchorC,
	2: AnchorF3,
	3: AnchorF0,
	4: AnchorF1,
	5: AnchorF5,
	6: AnchorF4,

	7: AnchorE0, 8: AnchorE1, 9: AnchorE2, 10: AnchorE3,
	11: AnchorE4, 12: AnchorE5, 13: AnchorE6, 14: AnchorE7,
	15: AnchorE8, 16: AnchorE9, 17: AnchorE10, 18: AnchorE11,

	19: AnchorV0, 20: AnchorV1, 21: AnchorV2, 22: AnchorV3,
	23: AnchorV4, 24: AnchorV5, 25: AnchorV6, 26: AnchorV7,
}

// LegacyBasicCount is the number of indices available when advanced
// pivots are disabled.
const LegacyBasicCount = 7

// AnchorFromIndex decodes a stored pivot index.
func AnchorFromIndex(i int) (Anchor, error) {
	if i < 0 || i >= len(legacyIndex) {
		return 0, &geom.InvalidAnchorError{Value: fmt.Sprint(i), Reason: "pivot index out of range 0-26"}
	}
	return legacyIndex[i], nil
}

// Index encodes a as a stored pivot index.
func (a Anchor) Index() (int, error) {
	for i, b := range legacyIndex {
		if b == a {
			return i, nil
		}
	}
	return 0, &geom.InvalidAnchorError{Value: a.String(), Reason: "no pivot index"}
}

// PivotFromAttribute decodes a stored pivot index, rejecting the
// advanced range unless advanced pivots are enabled.
func PivotFromAttribute(index int, advanced bool) (Anchor, error) {
	if !advanced && index >= LegacyBasicCount {
		return 0, &geom.InvalidAnchorError{
			Value:  fmt.Sprint(index),
			Reason: "advanced pivots are disabled; expected 0-6",
		}
	}
	return AnchorFromIndex(index)
}
