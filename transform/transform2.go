package transform

import (
	"github.com/evilsocket/galu/matrix"
	"github.com/evilsocket/galu/vector"
)

// Rotate2 rotates about the origin by radians.
func Rotate2(radians float32) matrix.Matrix2 {
	sin, cos := sincos(radians)
	return matrix.New2(
		cos, -sin,
		sin, cos,
	)
}

// Scale2 scales by s.X along the x axis and s.Y along the y axis.
func Scale2(s vector.Vector2) matrix.Matrix2 {
	return matrix.New2(
		s.X, 0,
		0, s.Y,
	)
}

// Reflect2 reflects across the line through the origin along direction.
// A zero direction yields NaN elements.
func Reflect2(direction vector.Vector2) matrix.Matrix2 {
	x, y := direction.X, direction.Y
	return matrix.New2(
		x*x-y*y, 2*x*y,
		2*x*y, y*y-x*x,
	).MultiplyScalar(1 / direction.LengthSquared())
}

// ProjectOrthogonal2 projects onto the line through the origin along direction.
func ProjectOrthogonal2(direction vector.Vector2) matrix.Matrix2 {
	x, y := direction.X, direction.Y
	return matrix.New2(
		x*x, x*y,
		x*y, y*y,
	).MultiplyScalar(1 / direction.LengthSquared())
}
