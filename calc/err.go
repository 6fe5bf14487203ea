package calc

import (
	"errors"

	"github.com/ezrec/fixpoint/translate"
)

var f = translate.From

var (
	ErrResultMissing = errors.New(f("expression produced no result"))
)

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

type ErrBinding string

func (err ErrBinding) Error() string {
	return f("'%v' is not a name=value binding", string(err))
}
