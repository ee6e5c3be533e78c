package transform

import "github.com/evilsocket/galu/matrix"

// Combine2 composes transformations in the order they are given: the result
// applies ms[0] first and the last one last. No matrices yield the identity.
func Combine2(ms ...matrix.Matrix2) matrix.Matrix2 {
	res := matrix.Identity2
	for i := len(ms) - 1; i >= 0; i-- {
		res = res.Multiply(ms[i])
	}
	return res
}

func Combine3(ms ...matrix.Matrix3) matrix.Matrix3 {
	res := matrix.Identity3
	for i := len(ms) - 1; i >= 0; i-- {
		res = res.Multiply(ms[i])
	}
	return res
}

func Combine4(ms ...matrix.Matrix4) matrix.Matrix4 {
	res := matrix.Identity4
	for i := len(ms) - 1; i >= 0; i-- {
		res = res.Multiply(ms[i])
	}
	return res
}
