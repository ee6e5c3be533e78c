package matrix

func near(a, b []float32, epsilon float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d <= epsilon) {
			return false
		}
	}
	return true
}
