package internal

import (
	"github.com/ezrec/sfgen/translate"
)

var f = translate.From

type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrNumber) Is(target error) (ok bool) {
	_, ok = target.(ErrNumber)
	return
}

// ErrLine locates a parse error within a line-oriented input.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}
