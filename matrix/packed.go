package matrix

import (
	"github.com/evilsocket/galu/backend"

	"github.com/pkg/errors"
)

func transformPacked(kind string, n int, a, src, dst []float32) error {
	if len(src)%n != 0 {
		return errors.Wrapf(ErrCapacity, "%s: %d packed elements are not a multiple of %d", kind, len(src), n)
	} else if len(dst) < len(src) {
		return notEnough(kind, len(dst), len(src))
	} else if len(src) == 0 {
		return nil
	}

	if &src[0] == &dst[0] {
		src = append([]float32(nil), src...)
	}

	backend.Transform(n, a, len(src)/n, src, dst)
	return nil
}

// TransformPacked transforms every vector packed in src (X, Y, X, Y, ...) and
// writes the results at the same offsets of dst, which may be src itself but
// must not otherwise overlap it.
func (m Matrix2) TransformPacked(src, dst []float32) error {
	a := m.RowMajor()
	return transformPacked("Matrix2", 2, a[:], src, dst)
}

// TransformPacked is the Matrix3 version of Matrix2.TransformPacked.
func (m Matrix3) TransformPacked(src, dst []float32) error {
	a := m.RowMajor()
	return transformPacked("Matrix3", 3, a[:], src, dst)
}

// TransformPacked transforms the packed homogeneous vectors of src using the
// currently selected backend (see backend.Use).
func (m Matrix4) TransformPacked(src, dst []float32) error {
	a := m.RowMajor()
	return transformPacked("Matrix4", 4, a[:], src, dst)
}
