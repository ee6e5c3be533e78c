package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func dense(n int, elems []float32) *mat.Dense {
	data := make([]float64, len(elems))
	for i, f := range elems {
		data[i] = float64(f)
	}
	return mat.NewDense(n, n, data)
}

func fromDense(kind string, n int, d mat.Matrix) ([]float32, error) {
	rows, cols := d.Dims()
	if rows != n || cols != n {
		return nil, errors.Wrapf(ErrShape, "%s from a %dx%d matrix", kind, rows, cols)
	}
	elems := make([]float32, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			elems = append(elems, float32(d.At(r, c)))
		}
	}
	return elems, nil
}

// Dense converts the matrix to a float64 gonum matrix.
func (m Matrix2) Dense() *mat.Dense {
	elems := m.RowMajor()
	return dense(2, elems[:])
}

func (m Matrix3) Dense() *mat.Dense {
	elems := m.RowMajor()
	return dense(3, elems[:])
}

func (m Matrix4) Dense() *mat.Dense {
	elems := m.RowMajor()
	return dense(4, elems[:])
}

// FromDense2 narrows a 2x2 gonum matrix to float32, failing with ErrShape
// on any other size.
func FromDense2(d mat.Matrix) (Matrix2, error) {
	elems, err := fromDense("Matrix2", 2, d)
	if err != nil {
		return Matrix2{}, err
	}
	return LoadMatrix2(elems, RowMajor)
}

func FromDense3(d mat.Matrix) (Matrix3, error) {
	elems, err := fromDense("Matrix3", 3, d)
	if err != nil {
		return Matrix3{}, err
	}
	return LoadMatrix3(elems, RowMajor)
}

func FromDense4(d mat.Matrix) (Matrix4, error) {
	elems, err := fromDense("Matrix4", 4, d)
	if err != nil {
		return Matrix4{}, err
	}
	return LoadMatrix4(elems, RowMajor)
}
