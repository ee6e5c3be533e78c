package vector

import (
	"math"
	"testing"

	"github.com/evilsocket/galu/buffer"
	"github.com/pkg/errors"
	. "github.com/stretchr/testify/require"
)

const epsilon = 1e-5

var (
	negZero = float32(math.Copysign(0, -1))
	nan     = float32(math.NaN())

	testVectors2 = []Vector2{{3, 4}, {-1.5, 0.25}, {0, 0}, {1e3, -2e-3}}
	testVectors3 = []Vector3{{1, 2, 3}, {-0.5, 4, 0.125}, {0, 0, 0}, {7, -7, 7}}
	testVectors4 = []Vector4{{1, 2, 3, 4}, {-1, 0.5, 2, -2}, {0, 0, 0, 0}, {0.1, 0.2, 0.3, 1}}
)

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

func TestSizes(t *testing.T) {
	Equal(t, 2, Vector2{}.Size())
	Equal(t, 3, Vector3{}.Size())
	Equal(t, 4, Vector4{}.Size())
}

func TestLengthOfThreeFour(t *testing.T) {
	Equal(t, float32(5), Vec2(3, 4).Length())
	Equal(t, float32(25), Vec2(3, 4).LengthSquared())
}

func TestLengthSquaredMatchesLength(t *testing.T) {
	for _, v := range testVectors2 {
		l := v.Length()
		InDelta(t, v.LengthSquared(), l*l, 1e-3*float64(1+v.LengthSquared()), "%s", v)
	}
	for _, v := range testVectors3 {
		l := v.Length()
		InDelta(t, v.LengthSquared(), l*l, 1e-3*float64(1+v.LengthSquared()), "%s", v)
	}
	for _, v := range testVectors4 {
		l := v.Length()
		InDelta(t, v.LengthSquared(), l*l, 1e-3*float64(1+v.LengthSquared()), "%s", v)
	}
}

func TestAddSubtractRoundTrip(t *testing.T) {
	for _, v := range testVectors2 {
		for _, w := range testVectors2 {
			True(t, v.Add(w).Subtract(w).EqualApprox(v, epsilon), "%s + %s - %s", v, w, w)
		}
	}
	for _, v := range testVectors3 {
		for _, w := range testVectors3 {
			True(t, v.Add(w).Subtract(w).EqualApprox(v, epsilon), "%s + %s - %s", v, w, w)
		}
	}
	for _, v := range testVectors4 {
		for _, w := range testVectors4 {
			True(t, v.Add(w).Subtract(w).EqualApprox(v, epsilon), "%s + %s - %s", v, w, w)
		}
	}
}

func TestNegateTwiceIsIdentity(t *testing.T) {
	for _, v := range testVectors2 {
		True(t, v.Negate().Negate().Equal(v))
	}
	for _, v := range testVectors3 {
		True(t, v.Negate().Negate().Equal(v))
	}
	for _, v := range testVectors4 {
		True(t, v.Negate().Negate().Equal(v))
	}
}

func TestComponentwise(t *testing.T) {
	Equal(t, Vec2(4, -6), Vec2(1, 2).Add(Vec2(3, -8)))
	Equal(t, Vec2(-2, 10), Vec2(1, 2).Subtract(Vec2(3, -8)))
	Equal(t, Vec2(3, -16), Vec2(1, 2).Multiply(Vec2(3, -8)))
	Equal(t, Vec2(2.5, 5), Vec2(1, 2).MultiplyScalar(2.5))

	Equal(t, Vec3(5, 7, 9), Vec3(1, 2, 3).Add(Vec3(4, 5, 6)))
	Equal(t, Vec3(-3, -3, -3), Vec3(1, 2, 3).Subtract(Vec3(4, 5, 6)))
	Equal(t, Vec3(4, 10, 18), Vec3(1, 2, 3).Multiply(Vec3(4, 5, 6)))
	Equal(t, Vec3(-1, -2, -3), Vec3(1, 2, 3).Negate())

	Equal(t, Vec4(0, 2.5, 5, 2), Vec4(1, 2, 3, 4).Add(Vec4(-1, 0.5, 2, -2)))
	Equal(t, Vec4(2, 1.5, 1, 6), Vec4(1, 2, 3, 4).Subtract(Vec4(-1, 0.5, 2, -2)))
	Equal(t, Vec4(3, 6, 9, 12), Vec4(1, 2, 3, 4).MultiplyScalar(3))
	Equal(t, Vec4(-1, 1, 6, -8), Vec4(1, 2, 3, 4).Multiply(Vec4(-1, 0.5, 2, -2)))
}

func TestDot(t *testing.T) {
	Equal(t, float32(-13), Vec2(1, 2).Dot(Vec2(3, -8)))
	Equal(t, float32(32), Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)))
	Equal(t, float32(-2), Vec4(1, 2, 3, 4).Dot(Vec4(-1, 0.5, 2, -2)))
}

func TestNormalize(t *testing.T) {
	n2 := Vec2(3, 4).Normalize()
	True(t, n2.EqualApprox(Vec2(0.6, 0.8), epsilon), "%s", n2)
	InDelta(t, 1, n2.Length(), epsilon)

	n3 := Vec3(0, 0, 2).Normalize()
	Equal(t, Vec3(0, 0, 1), n3)

	n4 := Vec4(1, 2, 3, 4).Normalize()
	InDelta(t, 1, n4.Length(), epsilon)
}

func TestNormalizeZeroLengthPassesNaNThrough(t *testing.T) {
	n2 := Vector2{}.Normalize()
	True(t, isNaN(n2.X) && isNaN(n2.Y), "%s", n2)

	n3 := Vector3{}.Normalize()
	True(t, isNaN(n3.X) && isNaN(n3.Y) && isNaN(n3.Z), "%s", n3)

	n4 := Vector4{}.Normalize()
	True(t, isNaN(n4.X) && isNaN(n4.W), "%s", n4)
}

func TestAngleBetween(t *testing.T) {
	InDelta(t, math.Pi/2, Vec2(1, 0).AngleBetween(Vec2(0, 1)), epsilon)
	InDelta(t, math.Pi, Vec2(1, 0).AngleBetween(Vec2(-3, 0)), epsilon)
	Equal(t, float32(0), Vec2(1, 0).AngleBetween(Vec2(2, 0)))
	InDelta(t, math.Pi/2, Vec3(1, 0, 0).AngleBetween(Vec3(0, 0, 5)), epsilon)
	InDelta(t, math.Pi/4, Vec4(1, 0, 0, 0).AngleBetween(Vec4(1, 1, 0, 0)), epsilon)
}

func TestAngleBetweenIsNotClamped(t *testing.T) {
	// a zero length operand makes the cosine 0/0, which must surface as NaN
	True(t, isNaN(Vec2(0, 0).AngleBetween(Vec2(1, 0))))
	True(t, isNaN(Vec3(1, 2, 3).AngleBetween(Vec3(0, 0, 0))))
	True(t, isNaN(Vec4(0, 0, 0, 0).AngleBetween(Vec4(0, 0, 0, 0))))

	// the ratio reaches acos untouched
	for _, v := range testVectors3[:2] {
		for _, w := range testVectors3[:2] {
			ratio := v.Dot(w) / (v.Length() * w.Length())
			expected := float32(math.Acos(float64(ratio)))
			if isNaN(expected) {
				True(t, isNaN(v.AngleBetween(w)))
			} else {
				Equal(t, expected, v.AngleBetween(w))
			}
		}
	}
}

func TestGet(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	for i, expected := range v.Array() {
		got, err := v.Get(i)
		Nil(t, err)
		Equal(t, expected, got)
	}

	x, err := Vec2(5, 6).Get(1)
	Nil(t, err)
	Equal(t, float32(6), x)

	z, err := Vec3(5, 6, 7).Get(2)
	Nil(t, err)
	Equal(t, float32(7), z)
}

func TestGetWithInvalidIndex(t *testing.T) {
	for _, idx := range []int{-1, 2, 666} {
		_, err := Vector2{}.Get(idx)
		Equal(t, ErrOutOfRange, errors.Cause(err), "index %d", idx)
	}
	for _, idx := range []int{-1, 3} {
		_, err := Vector3{}.Get(idx)
		Equal(t, ErrOutOfRange, errors.Cause(err), "index %d", idx)
	}
	for _, idx := range []int{-1, 4} {
		_, err := Vector4{}.Get(idx)
		Equal(t, ErrOutOfRange, errors.Cause(err), "index %d", idx)
	}
}

func TestBitwiseEquality(t *testing.T) {
	False(t, Vec2(0, 1).Equal(Vec2(negZero, 1)), "+0 and -0 must differ")
	True(t, Vec2(0, 1) == Vec2(negZero, 1), "== keeps IEEE value semantics")

	True(t, Vec3(nan, 1, 2).Equal(Vec3(nan, 1, 2)), "NaN components must compare equal")
	False(t, Vec3(nan, 1, 2) == Vec3(nan, 1, 2))

	True(t, Vec4(1, 2, 3, 4).Equal(Vec4(1, 2, 3, 4)))
	False(t, Vec4(1, 2, 3, 4).Equal(Vec4(1, 2, 3, 5)))
}

func TestBitsAsMapKey(t *testing.T) {
	seen := map[[2]uint32]int{}
	seen[Vec2(0, 0).Bits()]++
	seen[Vec2(negZero, 0).Bits()]++
	seen[Vec2(nan, 0).Bits()]++
	seen[Vec2(nan, 0).Bits()]++

	Len(t, seen, 3)
	Equal(t, 2, seen[Vec2(nan, 0).Bits()])
}

func TestHash(t *testing.T) {
	Equal(t, Vec3(1, 2, 3).Hash(), Vec3(1, 2, 3).Hash())
	Equal(t, Vec4(nan, 0, 0, 0).Hash(), Vec4(nan, 0, 0, 0).Hash())
	NotEqual(t, Vec2(0, 0).Hash(), Vec2(negZero, 0).Hash())
	NotEqual(t, Vec3(1, 2, 3).Hash(), Vec3(3, 2, 1).Hash())
}

func TestStoreLoad(t *testing.T) {
	arr := make([]float32, 4)

	Nil(t, Vec2(1, 2).Store(arr))
	v2, err := LoadVector2(arr)
	Nil(t, err)
	Equal(t, Vec2(1, 2), v2)

	Nil(t, Vec3(1, 2, 3).Store(arr))
	v3, err := LoadVector3(arr)
	Nil(t, err)
	Equal(t, Vec3(1, 2, 3), v3)

	Nil(t, Vec4(1, 2, 3, 4).Store(arr))
	Equal(t, []float32{1, 2, 3, 4}, arr)
	v4, err := LoadVector4(arr)
	Nil(t, err)
	Equal(t, Vec4(1, 2, 3, 4), v4)
}

func TestStoreLoadWithShortArray(t *testing.T) {
	short := []float32{1}

	Equal(t, ErrCapacity, errors.Cause(Vec2(1, 2).Store(short)))
	Equal(t, ErrCapacity, errors.Cause(Vec3(1, 2, 3).Store(short[:0])))
	Equal(t, ErrCapacity, errors.Cause(Vec4(1, 2, 3, 4).Store(make([]float32, 3))))
	Equal(t, []float32{1}, short, "failed stores must not write")

	_, err := LoadVector2(short)
	Equal(t, ErrCapacity, errors.Cause(err))
	_, err = LoadVector3([]float32{1, 2})
	Equal(t, ErrCapacity, errors.Cause(err))
	_, err = LoadVector4(nil)
	Equal(t, ErrCapacity, errors.Cause(err))
}

func TestPutRead(t *testing.T) {
	buf := buffer.Allocate(9)

	Nil(t, Vec2(1, 2).Put(buf))
	Nil(t, Vec3(3, 4, 5).Put(buf))
	Nil(t, Vec4(6, 7, 8, 9).Put(buf))
	Equal(t, 0, buf.Remaining())
	Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, buf.Slice())

	buf.Rewind()

	v2, err := ReadVector2(buf)
	Nil(t, err)
	Equal(t, Vec2(1, 2), v2)
	v3, err := ReadVector3(buf)
	Nil(t, err)
	Equal(t, Vec3(3, 4, 5), v3)
	v4, err := ReadVector4(buf)
	Nil(t, err)
	Equal(t, Vec4(6, 7, 8, 9), v4)
}

func TestPutReadWithShortBuffer(t *testing.T) {
	buf := buffer.Allocate(3)
	Nil(t, buf.SetPosition(1))

	Equal(t, ErrCapacity, errors.Cause(Vec3(1, 2, 3).Put(buf)))
	Equal(t, 1, buf.Position(), "failed puts must not advance")
	Nil(t, Vec2(1, 2).Put(buf))
	Equal(t, ErrCapacity, errors.Cause(Vec4(1, 2, 3, 4).Put(buf)))

	buf.Rewind()
	_, err := ReadVector4(buf)
	Equal(t, ErrCapacity, errors.Cause(err))
	Equal(t, 0, buf.Position(), "failed reads must not advance")

	v3, err := ReadVector3(buf)
	Nil(t, err)
	Equal(t, Vec3(0, 1, 2), v3)

	_, err = ReadVector2(buf)
	Equal(t, ErrCapacity, errors.Cause(err))
}

func TestConstructors(t *testing.T) {
	Equal(t, Vector3{1, 2, 3}, Vec3From2(Vec2(1, 2), 3))
	Equal(t, Vector4{1, 2, 3, 4}, Vec4From2(Vec2(1, 2), 3, 4))
	Equal(t, Vector4{1, 2, 3, 1}, Vec4From3(Vec3(1, 2, 3), 1))
}

func TestF32Interop(t *testing.T) {
	Equal(t, Vec2(1, 2), FromF32Vec2(Vec2(1, 2).F32()))
	Equal(t, Vec3(1, 2, 3), FromF32Vec3(Vec3(1, 2, 3).F32()))
	Equal(t, Vec4(1, 2, 3, 4), FromF32Vec4(Vec4(1, 2, 3, 4).F32()))
	Equal(t, float32(3), Vec4(1, 2, 3, 4).F32()[2])
}

func TestString(t *testing.T) {
	Equal(t, "(1.0000, 2.5000)", Vec2(1, 2.5).String())
	Equal(t, "(1.0000, 2.0000, -3.0000)", Vec3(1, 2, -3).String())
	Equal(t, "(0.0000, 0.0000, 0.0000, 1.0000)", Vec4(0, 0, 0, 1).String())
}
