package plan

import (
	"errors"

	"github.com/ezrec/sfgen/translate"
)

var f = translate.From

var (
	ErrTopology   = errors.New(f("'cells_per_frame' must be a positive multiple of %v", RowSize))
	ErrDataFrames = errors.New(f("'data_frames' must be at least 1"))
	ErrCapacity   = errors.New(f("the fragment distribution won't fit into the contiguous buffer"))
)

type ErrCellRange int

func (err ErrCellRange) Error() string {
	return f("invalid cell number %v", int(err))
}

func (err ErrCellRange) Is(target error) (ok bool) {
	_, ok = target.(ErrCellRange)
	return
}

type ErrUndefinedFragment string

func (err ErrUndefinedFragment) Error() string {
	return f("undefined fragment name '%v'", string(err))
}

func (err ErrUndefinedFragment) Is(target error) (ok bool) {
	_, ok = target.(ErrUndefinedFragment)
	return
}
