package backend

type naive struct {
}

func (impl naive) Name() string {
	return "naive"
}

func (impl naive) Transform(n int, a []float32, count int, src, dst []float32) {
	for v := 0; v < count; v++ {
		in := src[v*n : v*n+n]
		out := dst[v*n : v*n+n]
		for r := 0; r < n; r++ {
			sum := float32(0.0)
			for c, x := range in {
				sum += a[r*n+c] * x
			}
			out[r] = sum
		}
	}
}
