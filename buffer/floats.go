package buffer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrOverflow  = errors.New("not enough space left in buffer")
	ErrUnderflow = errors.New("not enough elements left in buffer")
	ErrPosition  = errors.New("position out of buffer bounds")
)

// Floats is a cursor over a caller owned float32 slice. Put and Next
// work relative to the current position and advance it, so consecutive
// values can be packed one after the other into the same backing array.
type Floats struct {
	data []float32
	pos  int
}

// Wrap creates a buffer over data, positioned at its first element.
// The slice is not copied: writes are visible to the caller.
func Wrap(data []float32) *Floats {
	return &Floats{data: data}
}

// Allocate creates a buffer with a new backing array of size elements.
func Allocate(size int) *Floats {
	return Wrap(make([]float32, size))
}

func (b *Floats) Capacity() int {
	return len(b.data)
}

func (b *Floats) Position() int {
	return b.pos
}

// SetPosition moves the cursor to pos, which may be equal to the capacity.
func (b *Floats) SetPosition(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return errors.Wrapf(ErrPosition, "position %d, capacity %d", pos, len(b.data))
	}
	b.pos = pos
	return nil
}

// Remaining returns the number of elements between the position and the end.
func (b *Floats) Remaining() int {
	return len(b.data) - b.pos
}

// Rewind moves the cursor back to the first element.
func (b *Floats) Rewind() {
	b.pos = 0
}

// Put writes values starting at the current position. Either all of them
// are written or, if they do not fit, none is and ErrOverflow is returned.
func (b *Floats) Put(values ...float32) error {
	if n := len(values); n > b.Remaining() {
		return errors.Wrapf(ErrOverflow, "%d elements required, %s", n, b)
	}
	b.pos += copy(b.data[b.pos:], values)
	return nil
}

// Next returns the next n elements and advances past them. The returned
// slice shares the backing array of the buffer.
func (b *Floats) Next(n int) ([]float32, error) {
	if n < 0 || n > b.Remaining() {
		return nil, errors.Wrapf(ErrUnderflow, "%d elements required, %s", n, b)
	}
	values := b.data[b.pos : b.pos+n]
	b.pos += n
	return values, nil
}

// Slice returns the whole backing slice, regardless of the position.
func (b *Floats) Slice() []float32 {
	return b.data
}

func (b *Floats) String() string {
	return fmt.Sprintf("buffer[pos=%d rem=%d cap=%d]", b.pos, b.Remaining(), len(b.data))
}
