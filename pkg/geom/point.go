package geom

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point2 is an ordered pair of reals. It doubles as a 2D point and as a
// closed range (X = low end, Y = high end) in the interpolation helpers.
type Point2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Area returns X*Y.
func (p Point2) Area() float64 {
	return p.X * p.Y
}

// Add returns p + o.
func (p Point2) Add(o Point2) Point2 {
	return Point2{p.X + o.X, p.Y + o.Y}
}

// Scale returns p * s.
func (p Point2) Scale(s float64) Point2 {
	return Point2{p.X * s, p.Y * s}
}

func (p Point2) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Point3 is an ordered triple of reals used for positions, sizes,
// rotations (degrees) and scales.
type Point3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vector is a Point3 read as a direction. The distinction is semantic only.
type Vector = Point3

var (
	Origin = Point3{}
	XAxis  = Vector{X: 1}
	YAxis  = Vector{Y: 1}
	ZAxis  = Vector{Z: 1}
	NegX   = Vector{X: -1}
	NegY   = Vector{Y: -1}
	NegZ   = Vector{Z: -1}
)

// P3 is shorthand for Point3{x, y, z}.
func P3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Uniform returns a Point3 with all components equal to v.
func Uniform(v float64) Point3 {
	return Point3{v, v, v}
}

// Add returns p + o.
func (p Point3) Add(o Point3) Point3 {
	return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns p - o.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Scale multiplies every component by s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Mul multiplies componentwise.
func (p Point3) Mul(o Point3) Point3 {
	return Point3{p.X * o.X, p.Y * o.Y, p.Z * o.Z}
}

// Neg returns -p.
func (p Point3) Neg() Point3 {
	return Point3{-p.X, -p.Y, -p.Z}
}

// Abs returns the componentwise absolute value.
func (p Point3) Abs() Point3 {
	return Point3{math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)}
}

// Dot is the raw (unnormalized) dot product.
func (p Point3) Dot(o Point3) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Cross is the raw right-handed cross product p × o.
func (p Point3) Cross(o Point3) Vector {
	return Vector{
		X: p.Y*o.Z - p.Z*o.Y,
		Y: p.Z*o.X - p.X*o.Z,
		Z: p.X*o.Y - p.Y*o.X,
	}
}

// Magnitude returns the Euclidean length.
func (p Point3) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Volume returns X*Y*Z.
func (p Point3) Volume() float64 {
	return p.X * p.Y * p.Z
}

// Values returns the components as an array, in x, y, z order.
func (p Point3) Values() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// Component returns the component along axis a.
func (p Point3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// WithComponent returns a copy of p with the component along a set to v.
func (p Point3) WithComponent(a Axis, v float64) Point3 {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}
	return p
}

// IsZero reports whether all components are exactly zero.
func (p Point3) IsZero() bool {
	return p == Origin
}

// ApproxEqual reports whether every component differs by at most tol.
func (p Point3) ApproxEqual(o Point3, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol && math.Abs(p.Y-o.Y) <= tol && math.Abs(p.Z-o.Z) <= tol
}

// Vec converts to the sdfx vector type.
func (p Point3) Vec() v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// FromVec converts an sdfx vector to a Point3.
func FromVec(v v3.Vec) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Point3Pair is an ordered pair of points: a segment, a line through two
// points, or a min/max bounding pair.
type Point3Pair struct {
	A Point3 `json:"a" yaml:"a"`
	B Point3 `json:"b" yaml:"b"`
}

// Delta returns B - A.
func (pp Point3Pair) Delta() Vector {
	return pp.B.Sub(pp.A)
}

// Length returns |B - A|.
func (pp Point3Pair) Length() float64 {
	return pp.Delta().Magnitude()
}

// Midpoint returns the point halfway between A and B.
func (pp Point3Pair) Midpoint() Point3 {
	return pp.Interpolate(0.5)
}

// Interpolate returns A + t*(B - A).
func (pp Point3Pair) Interpolate(t float64) Point3 {
	return pp.A.Add(pp.Delta().Scale(t))
}

// Min returns the componentwise minimum of A and B.
func (pp Point3Pair) Min() Point3 {
	return Point3{math.Min(pp.A.X, pp.B.X), math.Min(pp.A.Y, pp.B.Y), math.Min(pp.A.Z, pp.B.Z)}
}

// Max returns the componentwise maximum of A and B.
func (pp Point3Pair) Max() Point3 {
	return Point3{math.Max(pp.A.X, pp.B.X), math.Max(pp.A.Y, pp.B.Y), math.Max(pp.A.Z, pp.B.Z)}
}

// Size returns the extent of the axis-aligned box spanned by A and B.
func (pp Point3Pair) Size() Point3 {
	return pp.Max().Sub(pp.Min())
}
