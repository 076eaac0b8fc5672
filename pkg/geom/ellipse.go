package geom

import "math"

// GetPointPositionOnEllipse returns the point on the axis-aligned ellipse
// with semi-axes radii.X and radii.Y lying on the ray at the given angle
// (degrees, counter-clockwise from +X). Angles are taken modulo 360.
func GetPointPositionOnEllipse(degrees float64, radii Point2) (Point2, error) {
	if err := checkRadii(radii); err != nil {
		return Point2{}, err
	}
	a, b := radii.X, radii.Y

	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	switch d {
	case 0:
		return Point2{a, 0}, nil
	case 90:
		return Point2{0, b}, nil
	case 180:
		return Point2{-a, 0}, nil
	case 270:
		return Point2{0, -b}, nil
	}

	r := DegreesToRadians(d)
	t2 := math.Tan(r) * math.Tan(r)
	x := a * b / math.Sqrt(b*b+a*a*t2)
	y := a * b / math.Sqrt(a*a+b*b/t2)
	if d > 90 && d < 270 {
		x = -x
	}
	if d > 180 {
		y = -y
	}
	return Point2{x, y}, nil
}

// GetPointNormalAngleOnEllipse returns atan2(-b²x, a²y) in degrees for a
// point on the ellipse with semi-axes radii.
func GetPointNormalAngleOnEllipse(p Point2, radii Point2) (float64, error) {
	if err := checkRadii(radii); err != nil {
		return 0, err
	}
	a, b := radii.X, radii.Y
	return RadiansToDegrees(math.Atan2(-(b*b)*p.X, a*a*p.Y)), nil
}

func checkRadii(radii Point2) error {
	if radii.X <= 0 {
		return &InvalidRangeError{Field: "ellipse radius x", Value: radii.X, Reason: "must be positive"}
	}
	if radii.Y <= 0 {
		return &InvalidRangeError{Field: "ellipse radius y", Value: radii.Y, Reason: "must be positive"}
	}
	return nil
}
