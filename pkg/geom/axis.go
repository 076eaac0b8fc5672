package geom

import (
	"fmt"
	"strings"
)

// Axis identifies one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Unit returns the positive unit vector along the axis.
func (a Axis) Unit() Vector {
	switch a {
	case AxisX:
		return XAxis
	case AxisY:
		return YAxis
	case AxisZ:
		return ZAxis
	}
	return Origin
}

// ParseAxis converts "x", "y" or "z" (any case) into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, &InvalidAxisError{Value: s}
}

// MarshalText writes the axis as "x", "y" or "z".
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &InvalidAxisError{Value: a.String()}
	}
	return []byte(a.String()), nil
}

// UnmarshalText reads an axis letter.
func (a *Axis) UnmarshalText(b []byte) error {
	parsed, err := ParseAxis(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AxisFromIndex converts 0, 1, 2 into AxisX, AxisY, AxisZ.
func AxisFromIndex(i int) (Axis, error) {
	a := Axis(i)
	if !a.Valid() {
		return 0, &InvalidAxisError{Value: fmt.Sprint(i)}
	}
	return a, nil
}
