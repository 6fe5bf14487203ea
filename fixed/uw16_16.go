package fixed

import (
	"fmt"
	"math"
)

// UW16_16 is the widened unsigned 16.16 product format of UQ8_8, in a
// uint32.
type UW16_16 uint32

const (
	UW16_16IntegralBits   = 16
	UW16_16FractionalBits = 16

	UW16_16FractionalMask = UW16_16(1)<<UW16_16FractionalBits - 1
	UW16_16IntegralMask   = ^UW16_16FractionalMask

	UW16_16Epsilon    = UW16_16(1)
	UW16_16Min        = UW16_16(0)
	UW16_16Max        = UW16_16(math.MaxUint32)
	UW16_16RoundError = UW16_16FractionalMask
)

func UW16_16I(n uint32) UW16_16     { return UW16_16(n) << UW16_16FractionalBits }
func UW16_16F(f float64) UW16_16    { return UW16_16(f * (1 << UW16_16FractionalBits)) }
func UW16_16Raw(raw uint32) UW16_16 { return UW16_16(raw) }

func UW16_16B(b bool) UW16_16 {
	if b {
		return UW16_16I(1)
	}
	return 0
}

func (x UW16_16) Raw() uint32      { return uint32(x) }
func (x UW16_16) Int() uint32      { return uint32(x >> UW16_16FractionalBits) }
func (x UW16_16) Float64() float64 { return float64(x) / (1 << UW16_16FractionalBits) }
func (x UW16_16) Float32() float32 { return float32(x) / (1 << UW16_16FractionalBits) }
func (x UW16_16) Nonzero() bool    { return x != 0 }

// Narrow converts back to the format this one widens.
func (x UW16_16) Narrow() UQ8_8 {
	return UQ8_8(x >> (UW16_16FractionalBits - UQ8_8FractionalBits))
}

// Mul narrows both operands first; no quad width product exists.
func (x UW16_16) Mul(y UW16_16) UW16_16 { return x.Narrow().Mul(y.Narrow()) }

// MulNarrow multiplies by a value of the narrowed format.
func (x UW16_16) MulNarrow(y UQ8_8) UW16_16 { return x.Narrow().Mul(y) }

// MulInt narrows first, then multiplies by a plain integer.
func (x UW16_16) MulInt(n uint16) UW16_16 { return x.Narrow().MulInt(n) }

// MulFloat converts the float operand to UW16_16 first, then multiplies.
func (x UW16_16) MulFloat(f float64) UW16_16 { return x.Mul(UW16_16F(f)) }

// Div reduces both operands to the narrowed format before dividing.
func (x UW16_16) Div(y UW16_16) UQ8_8 { return x.DivNarrow(y.Narrow()) }

// DivNarrow divides the widened raw by the narrowed raw.
func (x UW16_16) DivNarrow(y UQ8_8) UQ8_8 { return UQ8_8(uint32(x) / uint32(y)) }

// DivInt divides by a plain integer, keeping the scale.
func (x UW16_16) DivInt(n uint32) UW16_16 { return UW16_16(uint32(x) / n) }

// AddNarrow widens the narrower operand; the sum stays widened.
func (x UW16_16) AddNarrow(y UQ8_8) UW16_16 { return x + y.Widen() }

// SubNarrow widens the narrower operand; the difference stays widened.
func (x UW16_16) SubNarrow(y UQ8_8) UW16_16 { return x - y.Widen() }

func (x UW16_16) Trunc() UW16_16 { return x & UW16_16IntegralMask }

// Traits describe the format.
func (UW16_16) Traits() Traits {
	return Traits{
		Widened:        true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   UW16_16IntegralBits,
		FractionalBits: UW16_16FractionalBits,
	}
}

func (x UW16_16) String() string { return fmt.Sprintf("%v", x.Float64()) }
