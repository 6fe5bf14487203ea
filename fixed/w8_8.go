package fixed

import (
	"fmt"
	"math"
)

// W8_8 is the widened 8.8 product format of Q4_4, in an int16. It is a
// distinct type from Q8_8; the widened flag lives in the type.
type W8_8 int16

const (
	W8_8IntegralBits   = 8
	W8_8FractionalBits = 8

	W8_8FractionalMask = W8_8(1)<<W8_8FractionalBits - 1
	W8_8IntegralMask   = ^W8_8FractionalMask

	W8_8Epsilon    = W8_8(1)
	W8_8Min        = W8_8(math.MinInt16)
	W8_8Max        = W8_8(math.MaxInt16)
	W8_8RoundError = W8_8FractionalMask
)

func W8_8I(n int16) W8_8     { return W8_8(n) << W8_8FractionalBits }
func W8_8F(f float64) W8_8   { return W8_8(f * (1 << W8_8FractionalBits)) }
func W8_8Raw(raw int16) W8_8 { return W8_8(raw) }

func W8_8B(b bool) W8_8 {
	if b {
		return W8_8I(1)
	}
	return 0
}

func (x W8_8) Raw() int16       { return int16(x) }
func (x W8_8) Int() int16       { return int16(x >> W8_8FractionalBits) }
func (x W8_8) Float64() float64 { return float64(x) / (1 << W8_8FractionalBits) }
func (x W8_8) Float32() float32 { return float32(x) / (1 << W8_8FractionalBits) }
func (x W8_8) Nonzero() bool    { return x != 0 }

// Narrow converts back to the format this one widens.
func (x W8_8) Narrow() Q4_4 {
	return Q4_4(x >> (W8_8FractionalBits - Q4_4FractionalBits))
}

// Mul narrows both operands first; no quad width product exists.
func (x W8_8) Mul(y W8_8) W8_8 { return x.Narrow().Mul(y.Narrow()) }

// MulNarrow multiplies by a value of the narrowed format.
func (x W8_8) MulNarrow(y Q4_4) W8_8 { return x.Narrow().Mul(y) }

// MulInt narrows first, then multiplies by a plain integer.
func (x W8_8) MulInt(n int8) W8_8 { return x.Narrow().MulInt(n) }

// MulFloat converts the float operand to W8_8 first, then multiplies.
func (x W8_8) MulFloat(f float64) W8_8 { return x.Mul(W8_8F(f)) }

// Div reduces both operands to the narrowed format before dividing.
func (x W8_8) Div(y W8_8) Q4_4 { return x.DivNarrow(y.Narrow()) }

// DivNarrow divides the widened raw by the narrowed raw.
func (x W8_8) DivNarrow(y Q4_4) Q4_4 { return Q4_4(int16(x) / int16(y)) }

// DivInt divides by a plain integer, keeping the scale.
func (x W8_8) DivInt(n int16) W8_8 { return W8_8(int16(x) / n) }

// AddNarrow widens the narrower operand; the sum stays widened.
func (x W8_8) AddNarrow(y Q4_4) W8_8 { return x + y.Widen() }

// SubNarrow widens the narrower operand; the difference stays widened.
func (x W8_8) SubNarrow(y Q4_4) W8_8 { return x - y.Widen() }

func (x W8_8) Trunc() W8_8 { return x & W8_8IntegralMask }

// Traits describe the format.
func (W8_8) Traits() Traits {
	return Traits{
		Signed:         true,
		Widened:        true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   W8_8IntegralBits,
		FractionalBits: W8_8FractionalBits,
	}
}

func (x W8_8) String() string { return fmt.Sprintf("%v", x.Float64()) }
