package geom

import "math"

// Epsilon is the tolerance below which a length is treated as zero.
const Epsilon = 1e-9

// Normalize returns v scaled to unit length.
func Normalize(v Vector) (Vector, error) {
	m := v.Magnitude()
	if m < Epsilon {
		return Vector{}, &DegenerateInputError{Op: "normalize", Reason: "zero-length vector"}
	}
	return v.Scale(1 / m), nil
}

// DotProduct returns a·b. With normalize set both operands are reduced to
// unit length first, which is the form used for sign tests.
func DotProduct(a, b Vector, normalize bool) (float64, error) {
	if !normalize {
		return a.Dot(b), nil
	}
	na, err := Normalize(a)
	if err != nil {
		return 0, err
	}
	nb, err := Normalize(b)
	if err != nil {
		return 0, err
	}
	return na.Dot(nb), nil
}

// CrossProduct returns the right-handed cross product a × b, optionally
// normalized. Normalizing a zero result (parallel inputs) is an error.
func CrossProduct(a, b Vector, normalize bool) (Vector, error) {
	c := a.Cross(b)
	if !normalize {
		return c, nil
	}
	return Normalize(c)
}

// AngleBetween returns the unsigned angle between a and b in radians,
// in [0, π].
func AngleBetween(a, b Vector) (float64, error) {
	ma, mb := a.Magnitude(), b.Magnitude()
	if ma < Epsilon || mb < Epsilon {
		return 0, &DegenerateInputError{Op: "angle between", Reason: "zero-length vector"}
	}
	c := a.Dot(b) / (ma * mb)
	// Rounding can push |c| slightly past 1 for parallel vectors.
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c), nil
}

// SignedAngleBetween returns AngleBetween(a, b), negated when a points
// away from ref.
func SignedAngleBetween(a, b, ref Vector) (float64, error) {
	angle, err := AngleBetween(a, b)
	if err != nil {
		return 0, err
	}
	d, err := DotProduct(a, ref, true)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return -angle, nil
	}
	return angle, nil
}

// VectorToEulerAngles returns the (x, y, 0) rotation in degrees that takes
// +Y onto the direction of v: x tilts away from +Y, y is the heading of the
// XZ projection measured from +Z towards +X. A vertical v has no heading,
// and y is reported as 0.
func VectorToEulerAngles(v Vector) (Point3, error) {
	tilt, err := AngleBetween(v, YAxis)
	if err != nil {
		return Point3{}, &DegenerateInputError{Op: "vector to euler angles", Reason: "zero-length vector"}
	}
	flat := Vector{X: v.X, Z: v.Z}
	heading := 0.0
	if flat.Magnitude() >= Epsilon {
		heading, err = SignedAngleBetween(flat, ZAxis, XAxis)
		if err != nil {
			return Point3{}, err
		}
	}
	return Point3{X: RadiansToDegrees(tilt), Y: RadiansToDegrees(heading)}, nil
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InterpolateLinear maps v from the range in (X..Y) onto out (X..Y).
func InterpolateLinear(in, out Point2, v float64) (float64, error) {
	width := in.Y - in.X
	if math.Abs(width) < Epsilon {
		return 0, &DegenerateInputError{Op: "interpolate linear", Reason: "zero-width input range"}
	}
	return out.X + (out.Y-out.X)*(v-in.X)/width, nil
}

// Midpoint returns the average of points.
func Midpoint(points ...Point3) (Point3, error) {
	if len(points) == 0 {
		return Point3{}, &DegenerateInputError{Op: "midpoint", Reason: "no points"}
	}
	var sum Point3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points))), nil
}

// RotateAboutY rotates p counter-clockwise about +Y by degrees.
func RotateAboutY(p Point3, degrees float64) Point3 {
	s, c := math.Sincos(DegreesToRadians(degrees))
	return Point3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// BoundsFromPoints returns the axis-aligned min/max pair enclosing points.
// A non-zero yOffset first rotates every point about +Y by that many
// degrees, giving the bounds in a heading-aligned frame.
func BoundsFromPoints(points []Point3, yOffset float64) (Point3Pair, error) {
	if len(points) == 0 {
		return Point3Pair{}, &DegenerateInputError{Op: "bounds from points", Reason: "no points"}
	}
	first := points[0]
	if yOffset != 0 {
		first = RotateAboutY(first, yOffset)
	}
	lo, hi := first, first
	for _, p := range points[1:] {
		if yOffset != 0 {
			p = RotateAboutY(p, yOffset)
		}
		lo = Point3Pair{A: lo, B: p}.Min()
		hi = Point3Pair{A: hi, B: p}.Max()
	}
	return Point3Pair{A: lo, B: hi}, nil
}
