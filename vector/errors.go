package vector

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange = errors.New("component index out of range")
	ErrCapacity   = errors.New("not enough elements")
)

func outOfRange(kind string, idx, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d exceeds bounds of %s (size %d)", idx, kind, size)
}

func notEnough(kind string, have, need int) error {
	return errors.Wrapf(ErrCapacity, "%s needs %d elements, %d available", kind, need, have)
}
