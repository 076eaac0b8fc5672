package geom

import "fmt"

// DegenerateInputError reports an operation that cannot produce a
// meaningful result from its input, such as normalizing a zero vector or
// measuring the angle against one.
type DegenerateInputError struct {
	Op     string // operation that rejected the input
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input: %s", e.Op, e.Reason)
}

// InvalidAnchorError reports an anchor or side identifier that is unknown,
// out of range, or has no counterpart in the requested vocabulary.
type InvalidAnchorError struct {
	Value  string
	Reason string
}

func (e *InvalidAnchorError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid anchor %q", e.Value)
	}
	return fmt.Sprintf("invalid anchor %q: %s", e.Value, e.Reason)
}

// InvalidAxisError reports an axis identifier outside {x, y, z}.
type InvalidAxisError struct {
	Value string
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("invalid axis %q, expected x, y, or z", e.Value)
}

// InvalidRangeError reports a numeric parameter outside its valid domain.
type InvalidRangeError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s = %g: %s", e.Field, e.Value, e.Reason)
}
