package config

import (
	"github.com/ezrec/sfgen/translate"
)

var f = translate.From

// ErrSuffix reports a scaled-integer string with an invalid trailing
// character.
type ErrSuffix string

func (err ErrSuffix) Error() string {
	return f("invalid suffix on '%v'", string(err))
}

func (err ErrSuffix) Is(target error) (ok bool) {
	_, ok = target.(ErrSuffix)
	return
}
