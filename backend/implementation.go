package backend

// each backend must implement these methods.
type implementation interface {
	Name() string

	// Transform applies the n×n row-major matrix a to count vectors of n
	// elements packed one after the other in src, writing them to dst.
	Transform(n int, a []float32, count int, src, dst []float32)
}
