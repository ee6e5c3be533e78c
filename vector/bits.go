package vector

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalNaN is the single bit pattern every NaN is collapsed to, so that
// equality and hashing treat all NaN values alike.
const canonicalNaN = 0x7fc00000

// FloatBits returns the bit pattern used for equality and hashing of f.
func FloatBits(f float32) uint32 {
	if math.IsNaN(float64(f)) {
		return canonicalNaN
	}
	return math.Float32bits(f)
}

// HashBits hashes a sequence of at most 16 component bit patterns.
func HashBits(bits ...uint32) uint64 {
	var raw [64]byte
	n := 0
	for _, b := range bits {
		binary.LittleEndian.PutUint32(raw[n:], b)
		n += 4
	}
	return xxhash.Sum64(raw[:n])
}

func sqrt(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func acos(f float32) float32 {
	return float32(math.Acos(float64(f)))
}

func near(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}
