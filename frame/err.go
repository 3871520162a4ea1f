package frame

import (
	"github.com/ezrec/sfgen/translate"
)

var f = translate.From

type ErrCell int

func (err ErrCell) Error() string {
	return f("cell %v is outside the frame", int(err))
}

func (err ErrCell) Is(target error) (ok bool) {
	_, ok = target.(ErrCell)
	return
}
