package genome

import (
	"errors"

	"github.com/ezrec/sfgen/translate"
)

var f = translate.From

var (
	ErrNucleotideName  = errors.New(f("nucleotide name must be a single character"))
	ErrNucleotideEmpty = errors.New(f("nucleotide has no candidate values"))
	ErrNameCollision   = errors.New(f("fragment shares a name with a nucleotide"))
	ErrParen           = errors.New(f("unbalanced parenthesis"))
)

type ErrUnknownSymbol string

func (err ErrUnknownSymbol) Error() string {
	return f("unknown fragment/nucleotide '%v'", string(err))
}

func (err ErrUnknownSymbol) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownSymbol)
	return
}

type ErrCycle string

func (err ErrCycle) Error() string {
	return f("fragment '%v' is defined in terms of itself", string(err))
}

func (err ErrCycle) Is(target error) (ok bool) {
	_, ok = target.(ErrCycle)
	return
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrExpression)
	return
}
