package transform

import "github.com/evilsocket/galu/matrix"

// ToHomogeneous embeds m in the upper left corner of a 4x4 identity.
func ToHomogeneous(m matrix.Matrix3) matrix.Matrix4 {
	return matrix.New4(
		m.M00, m.M01, m.M02, 0,
		m.M10, m.M11, m.M12, 0,
		m.M20, m.M21, m.M22, 0,
		0, 0, 0, 1,
	)
}

// FromHomogeneous drops the last row and column of m, translation included.
func FromHomogeneous(m matrix.Matrix4) matrix.Matrix3 {
	return matrix.New3(
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	)
}
