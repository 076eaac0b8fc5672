package geom

import (
	"github.com/deadsy/sdfx/sdf"
)

// EulerMatrix builds the rotation for Euler angles in degrees applied
// about X first, then Y, then Z (matrix Rz·Ry·Rx). The solid kernel uses
// the same matrix, so placed geometry and computed anchors always agree.
func EulerMatrix(rotation Point3) sdf.M44 {
	return sdf.RotateZ(DegreesToRadians(rotation.Z)).
		Mul(sdf.RotateY(DegreesToRadians(rotation.Y))).
		Mul(sdf.RotateX(DegreesToRadians(rotation.X)))
}

// InverseEulerMatrix undoes EulerMatrix(rotation): Rx⁻¹·Ry⁻¹·Rz⁻¹.
func InverseEulerMatrix(rotation Point3) sdf.M44 {
	return sdf.RotateX(DegreesToRadians(-rotation.X)).
		Mul(sdf.RotateY(DegreesToRadians(-rotation.Y))).
		Mul(sdf.RotateZ(DegreesToRadians(-rotation.Z)))
}

// ApplyEulerXYZRotation rotates offset by rotation (degrees, XYZ order).
func ApplyEulerXYZRotation(offset Vector, rotation Point3) Vector {
	if rotation.IsZero() {
		return offset
	}
	return FromVec(EulerMatrix(rotation).MulPosition(offset.Vec()))
}

// InverseEulerXYZRotation maps a rotated offset back into the unrotated
// frame. Negating the Euler angles is not an inverse for XYZ order; this
// reverses the axis order as well.
func InverseEulerXYZRotation(offset Vector, rotation Point3) Vector {
	if rotation.IsZero() {
		return offset
	}
	return FromVec(InverseEulerMatrix(rotation).MulPosition(offset.Vec()))
}
