package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/evilsocket/galu/matrix"
)

func parseFloats(args []string) ([]float32, error) {
	values := make([]float32, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, err
		}
		values[i] = float32(f)
	}
	return values, nil
}

func radians(degrees float32) float32 {
	return float32(float64(degrees) * math.Pi / 180.0)
}

func floatsAsString(data []float32) string {
	strs := make([]string, len(data))
	for i, f := range data {
		if f == 0.0 {
			strs[i] = "0"
		} else if f == 1.0 {
			strs[i] = "1"
		} else {
			strs[i] = fmt.Sprintf("%f", f)
		}
	}
	return strings.Join(strs, ",")
}

func matrixRows(m matrix.Matrix4) [][]string {
	elems := m.RowMajor()
	rows := make([][]string, 4)
	for r := 0; r < 4; r++ {
		rows[r] = make([]string, 4)
		for c := 0; c < 4; c++ {
			rows[r][c] = fmt.Sprintf("%.4f", elems[r*4+c])
		}
	}
	return rows
}
