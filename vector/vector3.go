package vector

import (
	"fmt"

	"github.com/evilsocket/galu/buffer"
)

// Vector3 is a 3 components vector.
type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) Size() int { return 3 }

// Get returns the idx-th component, in X, Y, Z order.
func (v Vector3) Get(idx int) (float32, error) {
	switch idx {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return 0, outOfRange("Vector3", idx, 3)
}

// Length returns the euclidean norm of the vector.
func (v Vector3) Length() float32 { return sqrt(v.LengthSquared()) }

// LengthSquared returns the sum of the squared components.
func (v Vector3) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Normalize divides every component by the length of the vector.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

func (v Vector3) Add(o Vector3) Vector3      { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Subtract(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Multiply(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vector3) MultiplyScalar(f float32) Vector3 {
	return Vector3{v.X * f, v.Y * f, v.Z * f}
}
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between the vector and another.
func (v Vector3) Dot(o Vector3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// AngleBetween returns the angle in radians between the vector and another.
func (v Vector3) AngleBetween(o Vector3) float32 {
	return acos(v.Dot(o) / (v.Length() * o.Length()))
}

// Array returns the components as an array.
func (v Vector3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

// Store writes the components at the beginning of dst.
func (v Vector3) Store(dst []float32) error {
	if len(dst) < 3 {
		return notEnough("Vector3", len(dst), 3)
	}
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	return nil
}

// Put writes the components at the current position of buf and advances it.
func (v Vector3) Put(buf *buffer.Floats) error {
	if rem := buf.Remaining(); rem < 3 {
		return notEnough("Vector3", rem, 3)
	}
	return buf.Put(v.X, v.Y, v.Z)
}

// LoadVector3 reads a vector from the beginning of src.
func LoadVector3(src []float32) (Vector3, error) {
	if len(src) < 3 {
		return Vector3{}, notEnough("Vector3", len(src), 3)
	}
	return Vector3{src[0], src[1], src[2]}, nil
}

// ReadVector3 reads a vector from the current position of buf and advances it.
func ReadVector3(buf *buffer.Floats) (Vector3, error) {
	if rem := buf.Remaining(); rem < 3 {
		return Vector3{}, notEnough("Vector3", rem, 3)
	}
	src, err := buf.Next(3)
	if err != nil {
		return Vector3{}, err
	}
	return LoadVector3(src)
}

// Bits returns the bit patterns of the components, usable as a map key.
func (v Vector3) Bits() [3]uint32 {
	return [3]uint32{FloatBits(v.X), FloatBits(v.Y), FloatBits(v.Z)}
}

// Equal returns true if both vectors have the same component bit patterns.
func (v Vector3) Equal(o Vector3) bool { return v.Bits() == o.Bits() }

// EqualApprox returns true if every component differs by at most epsilon.
func (v Vector3) EqualApprox(o Vector3, epsilon float32) bool {
	return near(v.X, o.X, epsilon) && near(v.Y, o.Y, epsilon) && near(v.Z, o.Z, epsilon)
}

func (v Vector3) Hash() uint64 {
	b := v.Bits()
	return HashBits(b[:]...)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}
