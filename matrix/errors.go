package matrix

import (
	"github.com/evilsocket/galu/vector"

	"github.com/pkg/errors"
)

var (
	// ErrCapacity is shared with the vector package, so callers serializing
	// both kinds of values check a single error.
	ErrCapacity         = vector.ErrCapacity
	ErrNotInvertible    = errors.New("matrix is not invertible: determinant is 0")
	ErrUnsupportedOrder = errors.New("unsupported matrix ordering")
	ErrShape            = errors.New("unexpected matrix shape")
)

func notEnough(kind string, have, need int) error {
	return errors.Wrapf(ErrCapacity, "%s needs %d elements, %d available", kind, need, have)
}

func notInvertible(kind string) error {
	return errors.Wrap(ErrNotInvertible, kind)
}
