// Package geom holds the vector algebra shared by the rest of boxy:
// points and vectors, angle helpers, ellipse sampling, and the Euler XYZ
// rotation used everywhere a local offset is carried into world space.
//
// All functions are pure. Invalid input is reported through the typed
// errors in this package (DegenerateInputError, InvalidAnchorError,
// InvalidAxisError, InvalidRangeError) and never through panics.
package geom
