package transform

import (
	"math"
	"testing"

	"github.com/evilsocket/galu/matrix"
	"github.com/evilsocket/galu/vector"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	epsilon     = 1e-5
	quarterTurn = float32(math.Pi / 2)
)

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

func TestTransformations2(t *testing.T) {
	Convey("2D transformations", t, func() {
		Convey("rotating (1, 0) by a quarter turn gives (0, 1)", func() {
			r := Rotate2(quarterTurn).Transform(vector.Vec2(1, 0))
			So(r.EqualApprox(vector.Vec2(0, 1), epsilon), ShouldBeTrue)
		})

		Convey("rotations add up and preserve area", func() {
			r := Rotate2(0.3).Multiply(Rotate2(0.5))
			So(r.EqualApprox(Rotate2(0.8), epsilon), ShouldBeTrue)
			So(Rotate2(1.234).Determinant(), ShouldAlmostEqual, 1, epsilon)
		})

		Convey("scaling multiplies each component", func() {
			s := Scale2(vector.Vec2(2, -3)).Transform(vector.Vec2(5, 7))
			So(s, ShouldResemble, vector.Vec2(10, -21))
		})

		Convey("reflection across the x axis flips y", func() {
			r := Reflect2(vector.Vec2(1, 0))
			So(r.Equal(matrix.New2(1, 0, 0, -1)), ShouldBeTrue)
		})

		Convey("reflection across the diagonal swaps the components", func() {
			r := Reflect2(vector.Vec2(1, 1))
			So(r.Transform(vector.Vec2(1, 0)).EqualApprox(vector.Vec2(0, 1), epsilon), ShouldBeTrue)
			So(r.Multiply(r).EqualApprox(matrix.Identity2, epsilon), ShouldBeTrue)
		})

		Convey("reflecting across a zero direction yields NaN", func() {
			r := Reflect2(vector.Vec2(0, 0))
			So(isNaN(r.M00), ShouldBeTrue)
		})

		Convey("orthogonal projection keeps the component along the direction", func() {
			p := ProjectOrthogonal2(vector.Vec2(2, 0))
			So(p.Transform(vector.Vec2(3, 4)).EqualApprox(vector.Vec2(3, 0), epsilon), ShouldBeTrue)

			d := ProjectOrthogonal2(vector.Vec2(1, 2))
			So(d.Multiply(d).EqualApprox(d, epsilon), ShouldBeTrue)
		})
	})
}

func TestTransformations3(t *testing.T) {
	Convey("3x3 transformations", t, func() {
		Convey("rotating about z matches the homogeneous rotation", func() {
			z := vector.Vec3(0, 0, 1)
			for _, angle := range []float32{0, 0.25, quarterTurn, 2, -1} {
				r := Rotation3(angle, z)
				So(r.EqualApprox(FromHomogeneous(RotateZ(angle)), epsilon), ShouldBeTrue)
			}
		})

		Convey("rotating about a normalized axis matches RotateAxis", func() {
			axis := vector.Vec3(1, 2, 2).Normalize()
			r := Rotation3(0.7, axis)
			So(r.EqualApprox(FromHomogeneous(RotateAxis(0.7, axis)), epsilon), ShouldBeTrue)
			So(r.Transform(axis).EqualApprox(axis, epsilon), ShouldBeTrue)
		})

		Convey("scaling multiplies each component", func() {
			s := Scale3(vector.Vec3(1, 2, 3)).Transform(vector.Vec3(4, 5, 6))
			So(s, ShouldResemble, vector.Vec3(4, 10, 18))
		})
	})
}

func TestTransformations4(t *testing.T) {
	Convey("homogeneous transformations", t, func() {
		Convey("translation moves points but not directions", func() {
			tr := Translate(vector.Vec3(1, 2, 3))
			So(tr.Transform(vector.Vec4(0, 0, 0, 1)), ShouldResemble, vector.Vec4(1, 2, 3, 1))
			So(tr.Transform(vector.Vec4(1, 0, 0, 0)), ShouldResemble, vector.Vec4(1, 0, 0, 0))
		})

		Convey("scaling keeps W", func() {
			s := Scale(vector.Vec3(2, 3, 4)).Transform(vector.Vec4(1, 1, 1, 1))
			So(s, ShouldResemble, vector.Vec4(2, 3, 4, 1))
		})

		Convey("axis rotations follow the right hand rule", func() {
			x := RotateX(quarterTurn).Transform(vector.Vec4(0, 1, 0, 0))
			So(x.EqualApprox(vector.Vec4(0, 0, 1, 0), epsilon), ShouldBeTrue)

			y := RotateY(quarterTurn).Transform(vector.Vec4(0, 0, 1, 0))
			So(y.EqualApprox(vector.Vec4(1, 0, 0, 0), epsilon), ShouldBeTrue)

			z := RotateZ(quarterTurn).Transform(vector.Vec4(1, 0, 0, 1))
			So(z.EqualApprox(vector.Vec4(0, 1, 0, 1), epsilon), ShouldBeTrue)
		})

		Convey("Euler rotation composes the axis rotations", func() {
			angles := vector.Vec3(0.3, -1.1, 2.5)
			expected := RotateX(angles.X).Multiply(RotateY(angles.Y)).Multiply(RotateZ(angles.Z))
			So(RotateEuler(angles).EqualApprox(expected, epsilon), ShouldBeTrue)
			So(RotateEuler(vector.Vec3(0, 0, 0)).EqualApprox(matrix.Identity4, 0), ShouldBeTrue)
		})

		Convey("axis rotation normalizes the axis", func() {
			So(RotateAxis(0.4, vector.Vec3(0, 0, 5)).EqualApprox(RotateZ(0.4), epsilon), ShouldBeTrue)
			So(RotateAxis(-2, vector.Vec3(3, 0, 0)).EqualApprox(RotateX(-2), epsilon), ShouldBeTrue)
			So(RotateAxis(1, vector.Vec3(0, 0.5, 0)).EqualApprox(RotateY(1), epsilon), ShouldBeTrue)
		})

		Convey("axis rotation about a zero axis yields NaN", func() {
			r := RotateAxis(1, vector.Vec3(0, 0, 0))
			So(isNaN(r.M00), ShouldBeTrue)
			So(r.M33, ShouldEqual, float32(1))
		})

		Convey("shear parameters are placed by axis", func() {
			s := Shear(1, 2, 3, 4, 5, 6)
			So(s.RowMajor(), ShouldResemble, [16]float32{
				1, 3, 5, 0,
				1, 1, 6, 0,
				2, 4, 1, 0,
				0, 0, 0, 1,
			})
		})
	})
}

func TestCombine(t *testing.T) {
	Convey("combining transformations", t, func() {
		Convey("no matrices yield the identity", func() {
			So(Combine2().Equal(matrix.Identity2), ShouldBeTrue)
			So(Combine3().Equal(matrix.Identity3), ShouldBeTrue)
			So(Combine4().Equal(matrix.Identity4), ShouldBeTrue)
		})

		Convey("a single matrix is returned as is", func() {
			m := Translate(vector.Vec3(1, 2, 3))
			So(Combine4(m).EqualApprox(m, epsilon), ShouldBeTrue)
		})

		Convey("the first matrix is applied first", func() {
			a := Translate(vector.Vec3(1, 2, 3))
			b := RotateZ(quarterTurn)
			v := vector.Vec4(1, 0, 0, 1)

			combined := Combine4(a, b).Transform(v)
			So(combined.EqualApprox(b.Transform(a.Transform(v)), epsilon), ShouldBeTrue)
			So(combined.EqualApprox(vector.Vec4(-2, 2, 3, 1), epsilon), ShouldBeTrue)

			reversed := Combine4(b, a).Transform(v)
			So(reversed.EqualApprox(vector.Vec4(1, 3, 3, 1), epsilon), ShouldBeTrue)
		})

		Convey("three matrices are applied left to right", func() {
			a := Scale2(vector.Vec2(2, 1))
			b := Rotate2(quarterTurn)
			c := Scale2(vector.Vec2(1, 3))
			v := vector.Vec2(1, 1)

			expected := c.Transform(b.Transform(a.Transform(v)))
			So(Combine2(a, b, c).Transform(v).EqualApprox(expected, epsilon), ShouldBeTrue)
			So(expected.EqualApprox(vector.Vec2(-1, 6), epsilon), ShouldBeTrue)

			r := Rotation3(0.5, vector.Vec3(0, 1, 0))
			s := Scale3(vector.Vec3(1, 2, 3))
			w := vector.Vec3(1, 1, 1)
			So(Combine3(r, s).Transform(w).EqualApprox(s.Transform(r.Transform(w)), epsilon), ShouldBeTrue)
		})
	})
}

func TestHomogeneous(t *testing.T) {
	Convey("homogeneous conversions", t, func() {
		m := matrix.New3(
			1, 2, 3,
			4, 5, 6,
			7, 8, 9,
		)

		Convey("embedding and truncating is lossless", func() {
			So(FromHomogeneous(ToHomogeneous(m)).Equal(m), ShouldBeTrue)
		})

		Convey("the embedded matrix has an identity border", func() {
			h := ToHomogeneous(m)
			So(h.RowMajor(), ShouldResemble, [16]float32{
				1, 2, 3, 0,
				4, 5, 6, 0,
				7, 8, 9, 0,
				0, 0, 0, 1,
			})
		})

		Convey("truncation drops the translation", func() {
			tr := Translate(vector.Vec3(4, 5, 6))
			So(FromHomogeneous(tr).Equal(matrix.Identity3), ShouldBeTrue)
			So(ToHomogeneous(FromHomogeneous(tr)).Equal(matrix.Identity4), ShouldBeTrue)
		})
	})
}
