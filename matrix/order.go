package matrix

import (
	"fmt"

	"github.com/pkg/errors"
)

// Order selects how the elements of a matrix are laid out in a flat sequence.
type Order int

const (
	// ColumnMajor lays out column 0 top to bottom, then column 1 and so on.
	ColumnMajor Order = iota
	// RowMajor lays out row 0 left to right, then row 1 and so on.
	RowMajor
)

func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

func (o Order) check() error {
	if o != ColumnMajor && o != RowMajor {
		return errors.Wrapf(ErrUnsupportedOrder, "%s", o)
	}
	return nil
}
