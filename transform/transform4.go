package transform

import (
	"github.com/evilsocket/galu/matrix"
	"github.com/evilsocket/galu/vector"
)

// Scale scales by s.X, s.Y and s.Z along the respective axes.
func Scale(s vector.Vector3) matrix.Matrix4 {
	return matrix.New4(
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	)
}

// RotateX rotates about the x axis by angle radians.
func RotateX(angle float32) matrix.Matrix4 {
	sin, cos := sincos(angle)
	return matrix.New4(
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	)
}

// RotateY rotates about the y axis by angle radians.
func RotateY(angle float32) matrix.Matrix4 {
	sin, cos := sincos(angle)
	return matrix.New4(
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	)
}

// RotateZ rotates about the z axis by angle radians.
func RotateZ(angle float32) matrix.Matrix4 {
	sin, cos := sincos(angle)
	return matrix.New4(
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotateEuler rotates by the Euler angles (in radians) about the x, y and z
// axes. The result equals RotateX(angles.X)·RotateY(angles.Y)·RotateZ(angles.Z),
// so the z rotation is applied first.
func RotateEuler(angles vector.Vector3) matrix.Matrix4 {
	b, a := sincos(angles.X)
	d, c := sincos(angles.Y)
	f, e := sincos(angles.Z)

	ad := a * d
	bd := b * d

	return matrix.New4(
		c*e, -c*f, d, 0,
		bd*e+a*f, -bd*f+a*e, -b*c, 0,
		-ad*e+b*f, ad*f+b*e, a*c, 0,
		0, 0, 0, 1,
	)
}

// RotateAxis rotates by angle radians about axis. The axis is normalized
// first, a zero axis yields NaN elements.
func RotateAxis(angle float32, axis vector.Vector3) matrix.Matrix4 {
	sin, cos := sincos(angle)
	n := axis.Normalize()
	u, v, w := n.X, n.Y, n.Z
	k := 1 - cos

	return matrix.New4(
		cos+u*u*k, -w*sin+u*v*k, v*sin+u*w*k, 0,
		w*sin+v*u*k, cos+v*v*k, -u*sin+v*w*k, 0,
		-v*sin+w*u*k, u*sin+w*v*k, cos+w*w*k, 0,
		0, 0, 0, 1,
	)
}

// Translate moves points by t. Directions (W = 0) are not affected.
func Translate(t vector.Vector3) matrix.Matrix4 {
	return matrix.New4(
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	)
}

// Shear returns a shear matrix where each parameter {a}{b} shears a by b.
func Shear(xy, xz, yx, yz, zx, zy float32) matrix.Matrix4 {
	return matrix.New4(
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	)
}
