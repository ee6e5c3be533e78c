package transform

import (
	"github.com/evilsocket/galu/matrix"
	"github.com/evilsocket/galu/vector"
)

// Rotation3 rotates by radians about axis, which must already be normalized.
func Rotation3(radians float32, axis vector.Vector3) matrix.Matrix3 {
	sin, cos := sincos(radians)
	l, m, n := axis.X, axis.Y, axis.Z
	k := 1 - cos

	return matrix.New3(
		l*l*k+cos, m*l*k-n*sin, n*l*k+m*sin,
		l*m*k+n*sin, m*m*k+cos, n*m*k-l*sin,
		l*n*k-m*sin, m*n*k+l*sin, n*n*k+cos,
	)
}

func Scale3(s vector.Vector3) matrix.Matrix3 {
	return matrix.New3(
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	)
}
