package fixed

import (
	"fmt"
	"math"
)

// W32_32 is the widened 32.32 product format of Q16_16, in an int64.
// Widened formats exist to hold a lossless multiplication result; they
// have no widened companion of their own, so there is no double widening.
type W32_32 int64

const (
	W32_32IntegralBits   = 32
	W32_32FractionalBits = 32

	W32_32FractionalMask = W32_32(1)<<W32_32FractionalBits - 1
	W32_32IntegralMask   = ^W32_32FractionalMask

	W32_32Epsilon    = W32_32(1)
	W32_32Min        = W32_32(math.MinInt64)
	W32_32Max        = W32_32(math.MaxInt64)
	W32_32RoundError = W32_32FractionalMask
)

func W32_32I(n int64) W32_32     { return W32_32(n) << W32_32FractionalBits }
func W32_32F(f float64) W32_32   { return W32_32(f * (1 << W32_32FractionalBits)) }
func W32_32Raw(raw int64) W32_32 { return W32_32(raw) }

func W32_32B(b bool) W32_32 {
	if b {
		return W32_32I(1)
	}
	return 0
}

func (x W32_32) Raw() int64       { return int64(x) }
func (x W32_32) Int() int64       { return int64(x >> W32_32FractionalBits) }
func (x W32_32) Float64() float64 { return float64(x) / (1 << W32_32FractionalBits) }
func (x W32_32) Float32() float32 { return float32(x) / (1 << W32_32FractionalBits) }
func (x W32_32) Nonzero() bool    { return x != 0 }

// Narrow converts back to the format this one widens.
func (x W32_32) Narrow() Q16_16 {
	return Q16_16(x >> (W32_32FractionalBits - Q16_16FractionalBits))
}

// Mul narrows both operands first; two widened values cannot multiply
// directly, as no quad width product exists.
func (x W32_32) Mul(y W32_32) W32_32 { return x.Narrow().Mul(y.Narrow()) }

// MulNarrow multiplies by a value of the narrowed format.
func (x W32_32) MulNarrow(y Q16_16) W32_32 { return x.Narrow().Mul(y) }

// MulInt narrows first, then multiplies by a plain integer.
func (x W32_32) MulInt(n int32) W32_32 { return x.Narrow().MulInt(n) }

// MulFloat converts the float operand to W32_32 first, then multiplies.
func (x W32_32) MulFloat(f float64) W32_32 { return x.Mul(W32_32F(f)) }

// Div reduces both operands to the narrowed format before dividing.
func (x W32_32) Div(y W32_32) Q16_16 { return x.DivNarrow(y.Narrow()) }

// DivNarrow divides the widened raw by the narrowed raw; the quotient
// lands at the narrowed scale.
func (x W32_32) DivNarrow(y Q16_16) Q16_16 { return Q16_16(int64(x) / int64(y)) }

// DivInt divides by a plain integer, keeping the scale.
func (x W32_32) DivInt(n int64) W32_32 { return W32_32(int64(x) / n) }

// AddNarrow widens the narrower operand; the sum stays widened so that
// multiply-accumulate chains keep full precision.
func (x W32_32) AddNarrow(y Q16_16) W32_32 { return x + y.Widen() }

// SubNarrow widens the narrower operand; the difference stays widened.
func (x W32_32) SubNarrow(y Q16_16) W32_32 { return x - y.Widen() }

func (x W32_32) Trunc() W32_32 { return x & W32_32IntegralMask }

// Traits describe the format.
func (W32_32) Traits() Traits {
	return Traits{
		Signed:         true,
		Widened:        true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   W32_32IntegralBits,
		FractionalBits: W32_32FractionalBits,
	}
}

func (x W32_32) String() string { return fmt.Sprintf("%v", x.Float64()) }
