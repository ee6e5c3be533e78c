package matrix

import "golang.org/x/image/math/f32"

// F32 returns the matrix as an x/image row-major array.
func (m Matrix3) F32() f32.Mat3 {
	return f32.Mat3(m.RowMajor())
}

func (m Matrix4) F32() f32.Mat4 {
	return f32.Mat4(m.RowMajor())
}

func FromF32Mat3(a f32.Mat3) Matrix3 {
	return Matrix3{
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		a[6], a[7], a[8],
	}
}

func FromF32Mat4(a f32.Mat4) Matrix4 {
	return Matrix4{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}
