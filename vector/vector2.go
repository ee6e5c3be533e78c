package vector

import (
	"fmt"

	"github.com/evilsocket/galu/buffer"
)

// Vector2 is a 2 components vector.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) Size() int { return 2 }

// Get returns the idx-th component, in X, Y order.
func (v Vector2) Get(idx int) (float32, error) {
	switch idx {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, outOfRange("Vector2", idx, 2)
}

// Length returns the euclidean norm of the vector.
func (v Vector2) Length() float32 { return sqrt(v.LengthSquared()) }

// LengthSquared returns the sum of the squared components.
func (v Vector2) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y }

// Normalize divides every component by the length of the vector.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	return Vector2{v.X / l, v.Y / l}
}

func (v Vector2) Add(o Vector2) Vector2      { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Subtract(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Multiply(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }
func (v Vector2) MultiplyScalar(f float32) Vector2 {
	return Vector2{v.X * f, v.Y * f}
}
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns the dot product between the vector and another.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// AngleBetween returns the angle in radians between the vector and another.
func (v Vector2) AngleBetween(o Vector2) float32 {
	return acos(v.Dot(o) / (v.Length() * o.Length()))
}

// Array returns the components as an array.
func (v Vector2) Array() [2]float32 { return [2]float32{v.X, v.Y} }

// Store writes the components at the beginning of dst.
func (v Vector2) Store(dst []float32) error {
	if len(dst) < 2 {
		return notEnough("Vector2", len(dst), 2)
	}
	dst[0], dst[1] = v.X, v.Y
	return nil
}

// Put writes the components at the current position of buf and advances it.
func (v Vector2) Put(buf *buffer.Floats) error {
	if rem := buf.Remaining(); rem < 2 {
		return notEnough("Vector2", rem, 2)
	}
	return buf.Put(v.X, v.Y)
}

// LoadVector2 reads a vector from the beginning of src.
func LoadVector2(src []float32) (Vector2, error) {
	if len(src) < 2 {
		return Vector2{}, notEnough("Vector2", len(src), 2)
	}
	return Vector2{src[0], src[1]}, nil
}

// ReadVector2 reads a vector from the current position of buf and advances it.
func ReadVector2(buf *buffer.Floats) (Vector2, error) {
	if rem := buf.Remaining(); rem < 2 {
		return Vector2{}, notEnough("Vector2", rem, 2)
	}
	src, err := buf.Next(2)
	if err != nil {
		return Vector2{}, err
	}
	return LoadVector2(src)
}

// Bits returns the bit patterns of the components, usable as a map key.
func (v Vector2) Bits() [2]uint32 {
	return [2]uint32{FloatBits(v.X), FloatBits(v.Y)}
}

// Equal returns true if both vectors have the same component bit patterns.
func (v Vector2) Equal(o Vector2) bool { return v.Bits() == o.Bits() }

// EqualApprox returns true if every component differs by at most epsilon.
func (v Vector2) EqualApprox(o Vector2, epsilon float32) bool {
	return near(v.X, o.X, epsilon) && near(v.Y, o.Y, epsilon)
}

func (v Vector2) Hash() uint64 {
	b := v.Bits()
	return HashBits(b[:]...)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
