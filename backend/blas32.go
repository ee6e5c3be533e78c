package backend

import (
	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

type blas struct {
}

func (impl blas) Name() string {
	return "blas32"
}

func general(rows, cols int, data []float32) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   data[:rows*cols],
	}
}

// Transform computes dst = src × aᵀ, where src and dst are seen as row-major
// count×n matrices, so that every row of dst is a applied to the same row of src.
func (impl blas) Transform(n int, a []float32, count int, src, dst []float32) {
	blas32.Gemm(gblas.NoTrans, gblas.Trans, 1,
		general(count, n, src),
		general(n, n, a),
		0,
		general(count, n, dst))
}
