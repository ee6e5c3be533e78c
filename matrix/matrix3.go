package matrix

import (
	"fmt"

	"github.com/evilsocket/galu/buffer"
	"github.com/evilsocket/galu/vector"
)

var (
	// Identity3 is the 3x3 identity matrix.
	Identity3 = Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	// Zero3 is the 3x3 matrix with all elements set to 0.
	Zero3 = Matrix3{}
)

// Matrix3 is a 3x3 matrix.
type Matrix3 struct {
	M00, M01, M02,
	M10, M11, M12,
	M20, M21, M22 float32
}

// New3 creates a matrix from its elements in row-major order.
func New3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Matrix3 {
	return Matrix3{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}
}

func (m Matrix3) RowCount() int    { return 3 }
func (m Matrix3) ColumnCount() int { return 3 }

// Determinant is computed by cofactor expansion along the first row.
func (m Matrix3) Determinant() float32 {
	return m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
}

// Inverse returns the adjugate divided by the determinant, or ErrNotInvertible
// if the determinant is 0.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0.0 {
		return Matrix3{}, notInvertible("Matrix3")
	}

	factor := 1 / det
	return Matrix3{
		factor * (m.M11*m.M22 - m.M12*m.M21),
		-factor * (m.M01*m.M22 - m.M21*m.M02),
		factor * (m.M01*m.M12 - m.M11*m.M02),

		-factor * (m.M10*m.M22 - m.M20*m.M12),
		factor * (m.M00*m.M22 - m.M20*m.M02),
		-factor * (m.M00*m.M12 - m.M10*m.M02),

		factor * (m.M10*m.M21 - m.M20*m.M11),
		-factor * (m.M00*m.M21 - m.M20*m.M01),
		factor * (m.M00*m.M11 - m.M10*m.M01),
	}, nil
}

func (m Matrix3) Negate() Matrix3 {
	return Matrix3{
		-m.M00, -m.M01, -m.M02,
		-m.M10, -m.M11, -m.M12,
		-m.M20, -m.M21, -m.M22,
	}
}

func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

func (m Matrix3) Add(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00 + o.M00, m.M01 + o.M01, m.M02 + o.M02,
		m.M10 + o.M10, m.M11 + o.M11, m.M12 + o.M12,
		m.M20 + o.M20, m.M21 + o.M21, m.M22 + o.M22,
	}
}

func (m Matrix3) Subtract(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00 - o.M00, m.M01 - o.M01, m.M02 - o.M02,
		m.M10 - o.M10, m.M11 - o.M11, m.M12 - o.M12,
		m.M20 - o.M20, m.M21 - o.M21, m.M22 - o.M22,
	}
}

// Multiply returns the matrix product m·o.
func (m Matrix3) Multiply(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00*o.M00 + m.M01*o.M10 + m.M02*o.M20,
		m.M00*o.M01 + m.M01*o.M11 + m.M02*o.M21,
		m.M00*o.M02 + m.M01*o.M12 + m.M02*o.M22,

		m.M10*o.M00 + m.M11*o.M10 + m.M12*o.M20,
		m.M10*o.M01 + m.M11*o.M11 + m.M12*o.M21,
		m.M10*o.M02 + m.M11*o.M12 + m.M12*o.M22,

		m.M20*o.M00 + m.M21*o.M10 + m.M22*o.M20,
		m.M20*o.M01 + m.M21*o.M11 + m.M22*o.M21,
		m.M20*o.M02 + m.M21*o.M12 + m.M22*o.M22,
	}
}

// Divide returns m multiplied by the inverse of o.
func (m Matrix3) Divide(o Matrix3) (Matrix3, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Matrix3{}, err
	}
	return m.Multiply(inv), nil
}

func (m Matrix3) MultiplyScalar(f float32) Matrix3 {
	return Matrix3{
		m.M00 * f, m.M01 * f, m.M02 * f,
		m.M10 * f, m.M11 * f, m.M12 * f,
		m.M20 * f, m.M21 * f, m.M22 * f,
	}
}

func (m Matrix3) ElementMultiply(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00 * o.M00, m.M01 * o.M01, m.M02 * o.M02,
		m.M10 * o.M10, m.M11 * o.M11, m.M12 * o.M12,
		m.M20 * o.M20, m.M21 * o.M21, m.M22 * o.M22,
	}
}

func (m Matrix3) ElementDivide(o Matrix3) Matrix3 {
	return Matrix3{
		m.M00 / o.M00, m.M01 / o.M01, m.M02 / o.M02,
		m.M10 / o.M10, m.M11 / o.M11, m.M12 / o.M12,
		m.M20 / o.M20, m.M21 / o.M21, m.M22 / o.M22,
	}
}

// Transform returns the product of m and the column vector v.
func (m Matrix3) Transform(v vector.Vector3) vector.Vector3 {
	return vector.Vector3{
		X: m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		Y: m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		Z: m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

func (m Matrix3) RowMajor() [9]float32 {
	return [9]float32{
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
	}
}

func (m Matrix3) ColumnMajor() [9]float32 {
	return [9]float32{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Array returns the elements in column-major order for ColumnMajor and in
// row-major order otherwise.
func (m Matrix3) Array(order Order) [9]float32 {
	if order == ColumnMajor {
		return m.ColumnMajor()
	}
	return m.RowMajor()
}

// Store writes the 9 elements at the beginning of dst in the given order.
func (m Matrix3) Store(dst []float32, order Order) error {
	if len(dst) < 9 {
		return notEnough("Matrix3", len(dst), 9)
	}
	if err := order.check(); err != nil {
		return err
	}
	elems := m.Array(order)
	copy(dst, elems[:])
	return nil
}

// Put writes the 9 elements at the position of buf in the given order.
func (m Matrix3) Put(buf *buffer.Floats, order Order) error {
	if rem := buf.Remaining(); rem < 9 {
		return notEnough("Matrix3", rem, 9)
	}
	if err := order.check(); err != nil {
		return err
	}
	elems := m.Array(order)
	return buf.Put(elems[:]...)
}

// LoadMatrix3 reads a matrix from the first 9 elements of src.
func LoadMatrix3(src []float32, order Order) (Matrix3, error) {
	if len(src) < 9 {
		return Matrix3{}, notEnough("Matrix3", len(src), 9)
	}
	switch order {
	case RowMajor:
		return Matrix3{
			src[0], src[1], src[2],
			src[3], src[4], src[5],
			src[6], src[7], src[8],
		}, nil
	case ColumnMajor:
		return Matrix3{
			src[0], src[3], src[6],
			src[1], src[4], src[7],
			src[2], src[5], src[8],
		}, nil
	}
	return Matrix3{}, order.check()
}

// ReadMatrix3 reads a matrix from the position of buf and advances it.
func ReadMatrix3(buf *buffer.Floats, order Order) (Matrix3, error) {
	if rem := buf.Remaining(); rem < 9 {
		return Matrix3{}, notEnough("Matrix3", rem, 9)
	} else if err := order.check(); err != nil {
		return Matrix3{}, err
	}
	src, err := buf.Next(9)
	if err != nil {
		return Matrix3{}, err
	}
	return LoadMatrix3(src, order)
}

// Bits returns the bit patterns of the elements in row-major order.
func (m Matrix3) Bits() [9]uint32 {
	var bits [9]uint32
	for i, f := range m.RowMajor() {
		bits[i] = vector.FloatBits(f)
	}
	return bits
}

func (m Matrix3) Equal(o Matrix3) bool { return m.Bits() == o.Bits() }

func (m Matrix3) EqualApprox(o Matrix3, epsilon float32) bool {
	a, b := m.RowMajor(), o.RowMajor()
	return near(a[:], b[:], epsilon)
}

func (m Matrix3) Hash() uint64 {
	bits := m.Bits()
	return vector.HashBits(bits[:]...)
}

func (m Matrix3) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f\n%.4f %.4f %.4f\n%.4f %.4f %.4f]",
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22)
}
