package matrix

import (
	"testing"

	"github.com/evilsocket/galu/backend"
	"github.com/evilsocket/galu/vector"
	"github.com/pkg/errors"
	. "github.com/stretchr/testify/require"
)

var translation = New4(
	1, 0, 0, 10,
	0, 1, 0, 20,
	0, 0, 1, 30,
	0, 0, 0, 1,
)

func withEachBackend(t *testing.T, cb func(name string)) {
	prev := backend.Name()
	defer func() {
		NoError(t, backend.Use(prev))
	}()

	for _, name := range backend.Available() {
		NoError(t, backend.Use(name))
		cb(name)
	}
}

func TestTransformPacked4(t *testing.T) {
	src := []float32{
		1, 2, 3, 1,
		0, 0, 0, 1,
		-1, -2, -3, 0,
	}
	expected := []float32{
		11, 22, 33, 1,
		10, 20, 30, 1,
		-1, -2, -3, 0,
	}

	withEachBackend(t, func(name string) {
		dst := make([]float32, len(src))
		NoError(t, translation.TransformPacked(src, dst), name)
		InDeltaSlice(t, expected, dst, epsilon, name)
	})
}

func TestTransformPackedMatchesTransform(t *testing.T) {
	points := []vector.Vector3{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 0.5, Z: 2}, {X: 0, Y: 0, Z: 0}, {X: 7, Y: 7, Z: -7}}
	src := make([]float32, 0, 3*len(points))
	for _, p := range points {
		src = append(src, p.X, p.Y, p.Z)
	}

	withEachBackend(t, func(name string) {
		dst := make([]float32, len(src))
		NoError(t, testMatrix3.TransformPacked(src, dst), name)
		for i, p := range points {
			got, err := vector.LoadVector3(dst[i*3:])
			NoError(t, err)
			True(t, got.EqualApprox(testMatrix3.Transform(p), epsilon), "%s: %s", name, p)
		}
	})
}

func TestTransformPackedInPlace(t *testing.T) {
	withEachBackend(t, func(name string) {
		data := []float32{1, 2, 3, 4}
		NoError(t, New2(0, -1, 1, 0).TransformPacked(data, data), name)
		InDeltaSlice(t, []float32{-2, 1, -4, 3}, data, epsilon, name)
	})
}

func TestTransformPackedErrors(t *testing.T) {
	err := translation.TransformPacked(make([]float32, 5), make([]float32, 8))
	Equal(t, ErrCapacity, errors.Cause(err))

	err = testMatrix3.TransformPacked(make([]float32, 6), make([]float32, 5))
	Equal(t, ErrCapacity, errors.Cause(err))

	NoError(t, testMatrix2.TransformPacked(nil, nil))
}
