package matrix

import (
	"fmt"

	"github.com/evilsocket/galu/buffer"
	"github.com/evilsocket/galu/vector"
)

var (
	// Identity2 is the 2x2 identity matrix.
	Identity2 = Matrix2{
		1, 0,
		0, 1,
	}
	// Zero2 is the 2x2 matrix with all elements set to 0.
	Zero2 = Matrix2{}
)

// Matrix2 is a 2x2 matrix.
type Matrix2 struct {
	M00, M01,
	M10, M11 float32
}

// New2 creates a matrix from its elements in row-major order.
func New2(m00, m01, m10, m11 float32) Matrix2 {
	return Matrix2{m00, m01, m10, m11}
}

func (m Matrix2) RowCount() int    { return 2 }
func (m Matrix2) ColumnCount() int { return 2 }

func (m Matrix2) Determinant() float32 {
	return m.M00*m.M11 - m.M01*m.M10
}

// Inverse returns the inverse matrix, or ErrNotInvertible if the determinant is 0.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if det == 0.0 {
		return Matrix2{}, notInvertible("Matrix2")
	}
	factor := 1 / det
	return Matrix2{
		m.M11 * factor, -m.M01 * factor,
		-m.M10 * factor, m.M00 * factor,
	}, nil
}

func (m Matrix2) Negate() Matrix2 {
	return Matrix2{-m.M00, -m.M01, -m.M10, -m.M11}
}

func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m.M00, m.M10, m.M01, m.M11}
}

func (m Matrix2) Add(o Matrix2) Matrix2 {
	return Matrix2{m.M00 + o.M00, m.M01 + o.M01, m.M10 + o.M10, m.M11 + o.M11}
}

func (m Matrix2) Subtract(o Matrix2) Matrix2 {
	return Matrix2{m.M00 - o.M00, m.M01 - o.M01, m.M10 - o.M10, m.M11 - o.M11}
}

// Multiply returns the matrix product m·o.
func (m Matrix2) Multiply(o Matrix2) Matrix2 {
	return Matrix2{
		m.M00*o.M00 + m.M01*o.M10, m.M00*o.M01 + m.M01*o.M11,
		m.M10*o.M00 + m.M11*o.M10, m.M10*o.M01 + m.M11*o.M11,
	}
}

// Divide returns m multiplied by the inverse of o.
func (m Matrix2) Divide(o Matrix2) (Matrix2, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Matrix2{}, err
	}
	return m.Multiply(inv), nil
}

func (m Matrix2) MultiplyScalar(f float32) Matrix2 {
	return Matrix2{m.M00 * f, m.M01 * f, m.M10 * f, m.M11 * f}
}

// ElementMultiply returns the element by element product of m and o.
func (m Matrix2) ElementMultiply(o Matrix2) Matrix2 {
	return Matrix2{m.M00 * o.M00, m.M01 * o.M01, m.M10 * o.M10, m.M11 * o.M11}
}

// ElementDivide returns the element by element quotient of m and o.
func (m Matrix2) ElementDivide(o Matrix2) Matrix2 {
	return Matrix2{m.M00 / o.M00, m.M01 / o.M01, m.M10 / o.M10, m.M11 / o.M11}
}

// Transform returns the product of m and the column vector v.
func (m Matrix2) Transform(v vector.Vector2) vector.Vector2 {
	return vector.Vector2{
		X: m.M00*v.X + m.M01*v.Y,
		Y: m.M10*v.X + m.M11*v.Y,
	}
}

func (m Matrix2) RowMajor() [4]float32 {
	return [4]float32{
		m.M00, m.M01,
		m.M10, m.M11,
	}
}

func (m Matrix2) ColumnMajor() [4]float32 {
	return [4]float32{
		m.M00, m.M10,
		m.M01, m.M11,
	}
}

// Array returns the elements in column-major order for ColumnMajor and in
// row-major order otherwise.
func (m Matrix2) Array(order Order) [4]float32 {
	if order == ColumnMajor {
		return m.ColumnMajor()
	}
	return m.RowMajor()
}

// Store writes the 4 elements at the beginning of dst in the given order.
func (m Matrix2) Store(dst []float32, order Order) error {
	if len(dst) < 4 {
		return notEnough("Matrix2", len(dst), 4)
	}
	if err := order.check(); err != nil {
		return err
	}
	elems := m.Array(order)
	copy(dst, elems[:])
	return nil
}

// Put writes the 4 elements at the position of buf in the given order.
func (m Matrix2) Put(buf *buffer.Floats, order Order) error {
	if rem := buf.Remaining(); rem < 4 {
		return notEnough("Matrix2", rem, 4)
	}
	if err := order.check(); err != nil {
		return err
	}
	elems := m.Array(order)
	return buf.Put(elems[:]...)
}

// LoadMatrix2 reads a matrix from the first 4 elements of src.
func LoadMatrix2(src []float32, order Order) (Matrix2, error) {
	if len(src) < 4 {
		return Matrix2{}, notEnough("Matrix2", len(src), 4)
	}
	switch order {
	case RowMajor:
		return Matrix2{
			src[0], src[1],
			src[2], src[3],
		}, nil
	case ColumnMajor:
		return Matrix2{
			src[0], src[2],
			src[1], src[3],
		}, nil
	}
	return Matrix2{}, order.check()
}

// ReadMatrix2 reads a matrix from the position of buf and advances it.
func ReadMatrix2(buf *buffer.Floats, order Order) (Matrix2, error) {
	if rem := buf.Remaining(); rem < 4 {
		return Matrix2{}, notEnough("Matrix2", rem, 4)
	} else if err := order.check(); err != nil {
		return Matrix2{}, err
	}
	src, err := buf.Next(4)
	if err != nil {
		return Matrix2{}, err
	}
	return LoadMatrix2(src, order)
}

// Bits returns the bit patterns of the elements in row-major order.
func (m Matrix2) Bits() [4]uint32 {
	var bits [4]uint32
	for i, f := range m.RowMajor() {
		bits[i] = vector.FloatBits(f)
	}
	return bits
}

// Equal returns true if both matrices have the same element bit patterns.
func (m Matrix2) Equal(o Matrix2) bool { return m.Bits() == o.Bits() }

// EqualApprox returns true if every element differs by at most epsilon.
func (m Matrix2) EqualApprox(o Matrix2, epsilon float32) bool {
	a, b := m.RowMajor(), o.RowMajor()
	return near(a[:], b[:], epsilon)
}

func (m Matrix2) Hash() uint64 {
	bits := m.Bits()
	return vector.HashBits(bits[:]...)
}

func (m Matrix2) String() string {
	return fmt.Sprintf("[%.4f %.4f\n%.4f %.4f]", m.M00, m.M01, m.M10, m.M11)
}
