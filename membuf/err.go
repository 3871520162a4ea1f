package membuf

import (
	"errors"

	"github.com/ezrec/sfgen/translate"
)

var f = translate.From

var (
	ErrNotRoot     = errors.New(f("must be root to map physical memory"))
	ErrNullAddress = errors.New(f("loading to physical address 0 not permitted"))
	ErrTooBig      = errors.New(f("file is too big to fit into the buffer"))
)
