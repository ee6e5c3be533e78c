package vector

import (
	"fmt"

	"github.com/evilsocket/galu/buffer"
)

// Vector4 is a 4 components vector, generally used as homogeneous
// coordinates of a 3D point (W = 1) or direction (W = 0).
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector4) Size() int { return 4 }

// Get returns the idx-th component, in X, Y, Z, W order.
func (v Vector4) Get(idx int) (float32, error) {
	switch idx {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, outOfRange("Vector4", idx, 4)
}

// Length returns the euclidean norm of the vector.
func (v Vector4) Length() float32 { return sqrt(v.LengthSquared()) }

// LengthSquared returns the sum of the squared components.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize divides every component by the length of the vector.
func (v Vector4) Normalize() Vector4 {
	l := v.Length()
	return Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) Subtract(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4) Multiply(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vector4) MultiplyScalar(f float32) Vector4 {
	return Vector4{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

func (v Vector4) Negate() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the dot product between the vector and another.
func (v Vector4) Dot(o Vector4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// AngleBetween returns the angle in radians between the vector and another.
func (v Vector4) AngleBetween(o Vector4) float32 {
	return acos(v.Dot(o) / (v.Length() * o.Length()))
}

// Array returns the components as an array.
func (v Vector4) Array() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }

// Store writes the components at the beginning of dst.
func (v Vector4) Store(dst []float32) error {
	if len(dst) < 4 {
		return notEnough("Vector4", len(dst), 4)
	}
	dst[0], dst[1], dst[2], dst[3] = v.X, v.Y, v.Z, v.W
	return nil
}

// Put writes the components at the current position of buf and advances it.
func (v Vector4) Put(buf *buffer.Floats) error {
	if rem := buf.Remaining(); rem < 4 {
		return notEnough("Vector4", rem, 4)
	}
	return buf.Put(v.X, v.Y, v.Z, v.W)
}

// LoadVector4 reads a vector from the beginning of src.
func LoadVector4(src []float32) (Vector4, error) {
	if len(src) < 4 {
		return Vector4{}, notEnough("Vector4", len(src), 4)
	}
	return Vector4{src[0], src[1], src[2], src[3]}, nil
}

// ReadVector4 reads a vector from the current position of buf and advances it.
func ReadVector4(buf *buffer.Floats) (Vector4, error) {
	if rem := buf.Remaining(); rem < 4 {
		return Vector4{}, notEnough("Vector4", rem, 4)
	}
	src, err := buf.Next(4)
	if err != nil {
		return Vector4{}, err
	}
	return LoadVector4(src)
}

// Bits returns the bit patterns of the components, usable as a map key.
func (v Vector4) Bits() [4]uint32 {
	return [4]uint32{FloatBits(v.X), FloatBits(v.Y), FloatBits(v.Z), FloatBits(v.W)}
}

// Equal returns true if both vectors have the same component bit patterns.
func (v Vector4) Equal(o Vector4) bool { return v.Bits() == o.Bits() }

// EqualApprox returns true if every component differs by at most epsilon.
func (v Vector4) EqualApprox(o Vector4, epsilon float32) bool {
	return near(v.X, o.X, epsilon) && near(v.Y, o.Y, epsilon) &&
		near(v.Z, o.Z, epsilon) && near(v.W, o.W, epsilon)
}

func (v Vector4) Hash() uint64 {
	b := v.Bits()
	return HashBits(b[:]...)
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f, %.4f)", v.X, v.Y, v.Z, v.W)
}
