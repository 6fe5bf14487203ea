package fixed

import (
	"fmt"
	"math"
)

// W16_16 is the widened 16.16 product format of Q8_8, in an int32. Note
// that it is a distinct type from Q16_16: the widened flag lives in the
// type, not the storage.
type W16_16 int32

const (
	W16_16IntegralBits   = 16
	W16_16FractionalBits = 16

	W16_16FractionalMask = W16_16(1)<<W16_16FractionalBits - 1
	W16_16IntegralMask   = ^W16_16FractionalMask

	W16_16Epsilon    = W16_16(1)
	W16_16Min        = W16_16(math.MinInt32)
	W16_16Max        = W16_16(math.MaxInt32)
	W16_16RoundError = W16_16FractionalMask
)

func W16_16I(n int32) W16_16     { return W16_16(n) << W16_16FractionalBits }
func W16_16F(f float64) W16_16   { return W16_16(f * (1 << W16_16FractionalBits)) }
func W16_16Raw(raw int32) W16_16 { return W16_16(raw) }

func W16_16B(b bool) W16_16 {
	if b {
		return W16_16I(1)
	}
	return 0
}

func (x W16_16) Raw() int32       { return int32(x) }
func (x W16_16) Int() int32       { return int32(x >> W16_16FractionalBits) }
func (x W16_16) Float64() float64 { return float64(x) / (1 << W16_16FractionalBits) }
func (x W16_16) Float32() float32 { return float32(x) / (1 << W16_16FractionalBits) }
func (x W16_16) Nonzero() bool    { return x != 0 }

// Narrow converts back to the format this one widens.
func (x W16_16) Narrow() Q8_8 {
	return Q8_8(x >> (W16_16FractionalBits - Q8_8FractionalBits))
}

// Mul narrows both operands first; no quad width product exists.
func (x W16_16) Mul(y W16_16) W16_16 { return x.Narrow().Mul(y.Narrow()) }

// MulNarrow multiplies by a value of the narrowed format.
func (x W16_16) MulNarrow(y Q8_8) W16_16 { return x.Narrow().Mul(y) }

// MulInt narrows first, then multiplies by a plain integer.
func (x W16_16) MulInt(n int16) W16_16 { return x.Narrow().MulInt(n) }

// MulFloat converts the float operand to W16_16 first, then multiplies.
func (x W16_16) MulFloat(f float64) W16_16 { return x.Mul(W16_16F(f)) }

// Div reduces both operands to the narrowed format before dividing.
func (x W16_16) Div(y W16_16) Q8_8 { return x.DivNarrow(y.Narrow()) }

// DivNarrow divides the widened raw by the narrowed raw.
func (x W16_16) DivNarrow(y Q8_8) Q8_8 { return Q8_8(int32(x) / int32(y)) }

// DivInt divides by a plain integer, keeping the scale.
func (x W16_16) DivInt(n int32) W16_16 { return W16_16(int32(x) / n) }

// AddNarrow widens the narrower operand; the sum stays widened.
func (x W16_16) AddNarrow(y Q8_8) W16_16 { return x + y.Widen() }

// SubNarrow widens the narrower operand; the difference stays widened.
func (x W16_16) SubNarrow(y Q8_8) W16_16 { return x - y.Widen() }

func (x W16_16) Trunc() W16_16 { return x & W16_16IntegralMask }

// Traits describe the format.
func (W16_16) Traits() Traits {
	return Traits{
		Signed:         true,
		Widened:        true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   W16_16IntegralBits,
		FractionalBits: W16_16FractionalBits,
	}
}

func (x W16_16) String() string { return fmt.Sprintf("%v", x.Float64()) }
