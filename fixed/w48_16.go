package fixed

import (
	"fmt"
	"math"
)

// W48_16 is the widened 48.16 product format of Q24_8, in an int64.
type W48_16 int64

const (
	W48_16IntegralBits   = 48
	W48_16FractionalBits = 16

	W48_16FractionalMask = W48_16(1)<<W48_16FractionalBits - 1
	W48_16IntegralMask   = ^W48_16FractionalMask

	W48_16Epsilon    = W48_16(1)
	W48_16Min        = W48_16(math.MinInt64)
	W48_16Max        = W48_16(math.MaxInt64)
	W48_16RoundError = W48_16FractionalMask
)

func W48_16I(n int64) W48_16     { return W48_16(n) << W48_16FractionalBits }
func W48_16F(f float64) W48_16   { return W48_16(f * (1 << W48_16FractionalBits)) }
func W48_16Raw(raw int64) W48_16 { return W48_16(raw) }

func W48_16B(b bool) W48_16 {
	if b {
		return W48_16I(1)
	}
	return 0
}

func (x W48_16) Raw() int64       { return int64(x) }
func (x W48_16) Int() int64       { return int64(x >> W48_16FractionalBits) }
func (x W48_16) Float64() float64 { return float64(x) / (1 << W48_16FractionalBits) }
func (x W48_16) Float32() float32 { return float32(x) / (1 << W48_16FractionalBits) }
func (x W48_16) Nonzero() bool    { return x != 0 }

// Narrow converts back to the format this one widens.
func (x W48_16) Narrow() Q24_8 {
	return Q24_8(x >> (W48_16FractionalBits - Q24_8FractionalBits))
}

// Mul narrows both operands first; no quad width product exists.
func (x W48_16) Mul(y W48_16) W48_16 { return x.Narrow().Mul(y.Narrow()) }

// MulNarrow multiplies by a value of the narrowed format.
func (x W48_16) MulNarrow(y Q24_8) W48_16 { return x.Narrow().Mul(y) }

// MulInt narrows first, then multiplies by a plain integer.
func (x W48_16) MulInt(n int32) W48_16 { return x.Narrow().MulInt(n) }

// MulFloat converts the float operand to W48_16 first, then multiplies.
func (x W48_16) MulFloat(f float64) W48_16 { return x.Mul(W48_16F(f)) }

// Div reduces both operands to the narrowed format before dividing.
func (x W48_16) Div(y W48_16) Q24_8 { return x.DivNarrow(y.Narrow()) }

// DivNarrow divides the widened raw by the narrowed raw.
func (x W48_16) DivNarrow(y Q24_8) Q24_8 { return Q24_8(int64(x) / int64(y)) }

// DivInt divides by a plain integer, keeping the scale.
func (x W48_16) DivInt(n int64) W48_16 { return W48_16(int64(x) / n) }

// AddNarrow widens the narrower operand; the sum stays widened.
func (x W48_16) AddNarrow(y Q24_8) W48_16 { return x + y.Widen() }

// SubNarrow widens the narrower operand; the difference stays widened.
func (x W48_16) SubNarrow(y Q24_8) W48_16 { return x - y.Widen() }

func (x W48_16) Trunc() W48_16 { return x & W48_16IntegralMask }

// Traits describe the format.
func (W48_16) Traits() Traits {
	return Traits{
		Signed:         true,
		Widened:        true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   W48_16IntegralBits,
		FractionalBits: W48_16FractionalBits,
	}
}

func (x W48_16) String() string { return fmt.Sprintf("%v", x.Float64()) }
