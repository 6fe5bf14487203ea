// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>
//
// Package calc evaluates arithmetic expressions over fixed point
// bindings. Expressions use Starlark syntax; every binding and the
// built-in format constants are predeclared as floating point names,
// and the result is quantized to Q16.16.
package calc

import (
	"iter"
	"maps"
	"math"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fixpoint/fixed"
	"github.com/ezrec/fixpoint/internal"
)

var _calc_defines = map[string]string{
	"CALC_PRECISION": strconv.Itoa(fixed.Q16_16FractionalBits),
}

// Defines reports the constants predeclared for every evaluation.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		maps.All(_calc_defines),
		fixed.Defines(),
	)
}

// ParseBinding splits a "name=value" argument into a named Q16.16
// binding.
func ParseBinding(arg string) (name string, value fixed.Q16_16, err error) {
	name, str, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		err = ErrBinding(arg)
		return
	}
	f64, perr := strconv.ParseFloat(str, 64)
	if perr != nil {
		err = ErrBinding(arg)
		return
	}
	value = fixed.Q16_16F(f64)
	return
}

// Eval evaluates expr with vars predeclared, quantizing the result to
// Q16.16.
func Eval(expr string, vars map[string]fixed.Q16_16) (value fixed.Q16_16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range Defines() {
		f64, perr := strconv.ParseFloat(str, 64)
		if perr != nil {
			continue
		}
		pred[key] = starlark.Float(f64)
	}
	for key, val := range vars {
		pred[key] = starlark.Float(val.Float64())
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrResultMissing
		return
	}
	switch rc := st_rc.(type) {
	case starlark.Float:
		value = fixed.Q16_16F(float64(rc))
	case starlark.Int:
		rc_int64, ok := rc.Int64()
		if !ok {
			err = ErrExpression(expr)
			return
		}
		// The integral part of a Q16.16 holds 16 bits, sign included.
		if rc_int64 < math.MinInt16 || rc_int64 > math.MaxInt16 {
			err = ErrExpression(expr)
			return
		}
		value = fixed.Q16_16I(int32(rc_int64))
	default:
		err = ErrExpression(expr)
	}
	return
}
