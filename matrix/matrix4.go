package matrix

import (
	"fmt"

	"github.com/evilsocket/galu/buffer"
	"github.com/evilsocket/galu/vector"
)

var (
	// Identity4 is the 4x4 identity matrix.
	Identity4 = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	// Zero4 is the 4x4 matrix with all elements set to 0.
	Zero4 = Matrix4{}
)

// Matrix4 is a 4x4 matrix, mostly used to hold affine transformations of
// homogeneous coordinates.
type Matrix4 struct {
	M00, M01, M02, M03,
	M10, M11, M12, M13,
	M20, M21, M22, M23,
	M30, M31, M32, M33 float32
}

// New4 creates a matrix from its elements in row-major order.
func New4(m00, m01, m02, m03, m10, m11, m12, m13, m20, m21, m22, m23, m30, m31, m32, m33 float32) Matrix4 {
	return Matrix4{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

func (m Matrix4) RowCount() int    { return 4 }
func (m Matrix4) ColumnCount() int { return 4 }

// Determinant is computed by cofactor expansion along the first row.
func (m Matrix4) Determinant() float32 {
	m00, m01, m02, m03 := m.M00, m.M01, m.M02, m.M03
	m10, m11, m12, m13 := m.M10, m.M11, m.M12, m.M13
	m20, m21, m22, m23 := m.M20, m.M21, m.M22, m.M23
	m30, m31, m32, m33 := m.M30, m.M31, m.M32, m.M33

	return m00*(m11*(m22*m33-m32*m23)-m12*(m21*m33-m31*m23)+m13*(m21*m32-m31*m22)) -
		m01*(m10*(m22*m33-m32*m23)-m12*(m20*m33-m30*m23)+m13*(m20*m32-m30*m22)) +
		m02*(m10*(m21*m33-m31*m23)-m11*(m20*m33-m30*m23)+m13*(m20*m31-m30*m21)) -
		m03*(m10*(m21*m32-m22*m31)-m11*(m20*m32-m30*m22)+m12*(m20*m31-m30*m21))
}

// Inverse returns the adjugate divided by the determinant, or ErrNotInvertible
// if the determinant is 0.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0.0 {
		return Matrix4{}, notInvertible("Matrix4")
	}

	m00, m01, m02, m03 := m.M00, m.M01, m.M02, m.M03
	m10, m11, m12, m13 := m.M10, m.M11, m.M12, m.M13
	m20, m21, m22, m23 := m.M20, m.M21, m.M22, m.M23
	m30, m31, m32, m33 := m.M30, m.M31, m.M32, m.M33

	factor := 1 / det
	return Matrix4{
		factor * (m11*m22*m33 + m12*m23*m31 + m13*m21*m32 - m11*m23*m32 - m12*m21*m33 - m13*m22*m31),
		factor * (m01*m23*m32 + m02*m21*m33 + m03*m22*m31 - m01*m22*m33 - m02*m23*m31 - m03*m21*m32),
		factor * (m01*m12*m33 + m02*m13*m31 + m03*m11*m32 - m01*m13*m32 - m02*m11*m33 - m03*m12*m31),
		factor * (m01*m13*m22 + m02*m11*m23 + m03*m12*m21 - m01*m12*m23 - m02*m13*m21 - m03*m11*m22),

		factor * (m10*m23*m32 + m12*m20*m33 + m13*m22*m30 - m10*m22*m33 - m12*m23*m30 - m13*m20*m32),
		factor * (m00*m22*m33 + m02*m23*m30 + m03*m20*m32 - m00*m23*m32 - m02*m20*m33 - m03*m22*m30),
		factor * (m00*m13*m32 + m02*m10*m33 + m03*m12*m30 - m00*m12*m33 - m02*m13*m30 - m03*m10*m32),
		factor * (m00*m12*m23 + m02*m13*m20 + m03*m10*m22 - m00*m13*m22 - m02*m10*m23 - m03*m12*m20),

		factor * (m10*m21*m33 + m11*m23*m30 + m13*m20*m31 - m10*m23*m31 - m11*m20*m33 - m13*m21*m30),
		factor * (m00*m23*m31 + m01*m20*m33 + m03*m21*m30 - m00*m21*m33 - m01*m23*m30 - m03*m20*m31),
		factor * (m00*m11*m33 + m01*m13*m30 + m03*m10*m31 - m00*m13*m31 - m01*m10*m33 - m03*m11*m30),
		factor * (m00*m13*m21 + m01*m10*m23 + m03*m11*m20 - m00*m11*m23 - m01*m13*m20 - m03*m10*m21),

		factor * (m10*m22*m31 + m11*m20*m32 + m12*m21*m30 - m10*m21*m32 - m11*m22*m30 - m12*m20*m31),
		factor * (m00*m21*m32 + m01*m22*m30 + m02*m20*m31 - m00*m22*m31 - m01*m20*m32 - m02*m21*m30),
		factor * (m00*m12*m31 + m01*m10*m32 + m02*m11*m30 - m00*m11*m32 - m01*m12*m30 - m02*m10*m31),
		factor * (m00*m11*m22 + m01*m12*m20 + m02*m10*m21 - m00*m12*m21 - m01*m10*m22 - m02*m11*m20),
	}, nil
}

func (m Matrix4) Negate() Matrix4 {
	return Matrix4{
		-m.M00, -m.M01, -m.M02, -m.M03,
		-m.M10, -m.M11, -m.M12, -m.M13,
		-m.M20, -m.M21, -m.M22, -m.M23,
		-m.M30, -m.M31, -m.M32, -m.M33,
	}
}

func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33,
	}
}

func (m Matrix4) Add(o Matrix4) Matrix4 {
	return Matrix4{
		m.M00 + o.M00, m.M01 + o.M01, m.M02 + o.M02, m.M03 + o.M03,
		m.M10 + o.M10, m.M11 + o.M11, m.M12 + o.M12, m.M13 + o.M13,
		m.M20 + o.M20, m.M21 + o.M21, m.M22 + o.M22, m.M23 + o.M23,
		m.M30 + o.M30, m.M31 + o.M31, m.M32 + o.M32, m.M33 + o.M33,
	}
}

func (m Matrix4) Subtract(o Matrix4) Matrix4 {
	return Matrix4{
		m.M00 - o.M00, m.M01 - o.M01, m.M02 - o.M02, m.M03 - o.M03,
		m.M10 - o.M10, m.M11 - o.M11, m.M12 - o.M12, m.M13 - o.M13,
		m.M20 - o.M20, m.M21 - o.M21, m.M22 - o.M22, m.M23 - o.M23,
		m.M30 - o.M30, m.M31 - o.M31, m.M32 - o.M32, m.M33 - o.M33,
	}
}

// Multiply returns the matrix product m·o. When both are transformations,
// the result applies o first and m second.
func (m Matrix4) Multiply(o Matrix4) Matrix4 {
	return Matrix4{
		m.M00*o.M00 + m.M01*o.M10 + m.M02*o.M20 + m.M03*o.M30,
		m.M00*o.M01 + m.M01*o.M11 + m.M02*o.M21 + m.M03*o.M31,
		m.M00*o.M02 + m.M01*o.M12 + m.M02*o.M22 + m.M03*o.M32,
		m.M00*o.M03 + m.M01*o.M13 + m.M02*o.M23 + m.M03*o.M33,

		m.M10*o.M00 + m.M11*o.M10 + m.M12*o.M20 + m.M13*o.M30,
		m.M10*o.M01 + m.M11*o.M11 + m.M12*o.M21 + m.M13*o.M31,
		m.M10*o.M02 + m.M11*o.M12 + m.M12*o.M22 + m.M13*o.M32,
		m.M10*o.M03 + m.M11*o.M13 + m.M12*o.M23 + m.M13*o.M33,

		m.M20*o.M00 + m.M21*o.M10 + m.M22*o.M20 + m.M23*o.M30,
		m.M20*o.M01 + m.M21*o.M11 + m.M22*o.M21 + m.M23*o.M31,
		m.M20*o.M02 + m.M21*o.M12 + m.M22*o.M22 + m.M23*o.M32,
		m.M20*o.M03 + m.M21*o.M13 + m.M22*o.M23 + m.M23*o.M33,

		m.M30*o.M00 + m.M31*o.M10 + m.M32*o.M20 + m.M33*o.M30,
		m.M30*o.M01 + m.M31*o.M11 + m.M32*o.M21 + m.M33*o.M31,
		m.M30*o.M02 + m.M31*o.M12 + m.M32*o.M22 + m.M33*o.M32,
		m.M30*o.M03 + m.M31*o.M13 + m.M32*o.M23 + m.M33*o.M33,
	}
}

// Divide returns m multiplied by the inverse of o.
func (m Matrix4) Divide(o Matrix4) (Matrix4, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Matrix4{}, err
	}
	return m.Multiply(inv), nil
}

func (m Matrix4) MultiplyScalar(f float32) Matrix4 {
	return Matrix4{
		m.M00 * f, m.M01 * f, m.M02 * f, m.M03 * f,
		m.M10 * f, m.M11 * f, m.M12 * f, m.M13 * f,
		m.M20 * f, m.M21 * f, m.M22 * f, m.M23 * f,
		m.M30 * f, m.M31 * f, m.M32 * f, m.M33 * f,
	}
}

func (m Matrix4) ElementMultiply(o Matrix4) Matrix4 {
	return Matrix4{
		m.M00 * o.M00, m.M01 * o.M01, m.M02 * o.M02, m.M03 * o.M03,
		m.M10 * o.M10, m.M11 * o.M11, m.M12 * o.M12, m.M13 * o.M13,
		m.M20 * o.M20, m.M21 * o.M21, m.M22 * o.M22, m.M23 * o.M23,
		m.M30 * o.M30, m.M31 * o.M31, m.M32 * o.M32, m.M33 * o.M33,
	}
}

func (m Matrix4) ElementDivide(o Matrix4) Matrix4 {
	return Matrix4{
		m.M00 / o.M00, m.M01 / o.M01, m.M02 / o.M02, m.M03 / o.M03,
		m.M10 / o.M10, m.M11 / o.M11, m.M12 / o.M12, m.M13 / o.M13,
		m.M20 / o.M20, m.M21 / o.M21, m.M22 / o.M22, m.M23 / o.M23,
		m.M30 / o.M30, m.M31 / o.M31, m.M32 / o.M32, m.M33 / o.M33,
	}
}

// Transform returns the product of m and the column vector v.
func (m Matrix4) Transform(v vector.Vector4) vector.Vector4 {
	return vector.Vector4{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z + m.M03*v.W,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z + m.M13*v.W,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z + m.M23*v.W,
		W: m.M30*v.X + m.M31*v.Y + m.M32*v.Z + m.M33*v.W,
	}
}

func (m Matrix4) RowMajor() [16]float32 {
	return [16]float32{
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33,
	}
}

func (m Matrix4) ColumnMajor() [16]float32 {
	return [16]float32{
		m.M00, m.M10, m.M20, m.M30,
		m.M01, m.M11, m.M21, m.M31,
		m.M02, m.M12, m.M22, m.M32,
		m.M03, m.M13, m.M23, m.M33,
	}
}

// Array returns the elements in column-major order for ColumnMajor and in
// row-major order otherwise.
func (m Matrix4) Array(order Order) [16]float32 {
	if order == ColumnMajor {
		return m.ColumnMajor()
	}
	return m.RowMajor()
}

// Store writes the 16 elements at the beginning of dst in the given order.
func (m Matrix4) Store(dst []float32, order Order) error {
	if len(dst) < 16 {
		return notEnough("Matrix4", len(dst), 16)
	}
	if err := order.check(); err != nil {
		return err
	}
	elems := m.Array(order)
	copy(dst, elems[:])
	return nil
}

// Put writes the 16 elements at the position of buf in the given order.
func (m Matrix4) Put(buf *buffer.Floats, order Order) error {
	if rem := buf.Remaining(); rem < 16 {
		return notEnough("Matrix4", rem, 16)
	}
	if err := order.check(); err != nil {
		return err
	}
	elems := m.Array(order)
	return buf.Put(elems[:]...)
}

// LoadMatrix4 reads a matrix from the first 16 elements of src.
func LoadMatrix4(src []float32, order Order) (Matrix4, error) {
	if len(src) < 16 {
		return Matrix4{}, notEnough("Matrix4", len(src), 16)
	}
	switch order {
	case RowMajor:
		return Matrix4{
			src[0], src[1], src[2], src[3],
			src[4], src[5], src[6], src[7],
			src[8], src[9], src[10], src[11],
			src[12], src[13], src[14], src[15],
		}, nil
	case ColumnMajor:
		return Matrix4{
			src[0], src[4], src[8], src[12],
			src[1], src[5], src[9], src[13],
			src[2], src[6], src[10], src[14],
			src[3], src[7], src[11], src[15],
		}, nil
	}
	return Matrix4{}, order.check()
}

// ReadMatrix4 reads a matrix from the position of buf and advances it.
func ReadMatrix4(buf *buffer.Floats, order Order) (Matrix4, error) {
	if rem := buf.Remaining(); rem < 16 {
		return Matrix4{}, notEnough("Matrix4", rem, 16)
	} else if err := order.check(); err != nil {
		return Matrix4{}, err
	}
	src, err := buf.Next(16)
	if err != nil {
		return Matrix4{}, err
	}
	return LoadMatrix4(src, order)
}

// Bits returns the bit patterns of the elements in row-major order.
func (m Matrix4) Bits() [16]uint32 {
	var bits [16]uint32
	for i, f := range m.RowMajor() {
		bits[i] = vector.FloatBits(f)
	}
	return bits
}

func (m Matrix4) Equal(o Matrix4) bool { return m.Bits() == o.Bits() }

func (m Matrix4) EqualApprox(o Matrix4, epsilon float32) bool {
	a, b := m.RowMajor(), o.RowMajor()
	return near(a[:], b[:], epsilon)
}

func (m Matrix4) Hash() uint64 {
	bits := m.Bits()
	return vector.HashBits(bits[:]...)
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f %.4f\n%.4f %.4f %.4f %.4f\n%.4f %.4f %.4f %.4f\n%.4f %.4f %.4f %.4f]",
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33)
}
