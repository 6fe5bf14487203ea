package fixed

import (
	"fmt"
	"math"
)

// UW32_32 is the widened unsigned 32.32 product format of UQ16_16, in a
// uint64.
type UW32_32 uint64

const (
	UW32_32IntegralBits   = 32
	UW32_32FractionalBits = 32

	UW32_32FractionalMask = UW32_32(1)<<UW32_32FractionalBits - 1
	UW32_32IntegralMask   = ^UW32_32FractionalMask

	UW32_32Epsilon    = UW32_32(1)
	UW32_32Min        = UW32_32(0)
	UW32_32Max        = UW32_32(math.MaxUint64)
	UW32_32RoundError = UW32_32FractionalMask
)

func UW32_32I(n uint64) UW32_32     { return UW32_32(n) << UW32_32FractionalBits }
func UW32_32F(f float64) UW32_32    { return UW32_32(f * (1 << UW32_32FractionalBits)) }
func UW32_32Raw(raw uint64) UW32_32 { return UW32_32(raw) }

func UW32_32B(b bool) UW32_32 {
	if b {
		return UW32_32I(1)
	}
	return 0
}

func (x UW32_32) Raw() uint64      { return uint64(x) }
func (x UW32_32) Int() uint64      { return uint64(x >> UW32_32FractionalBits) }
func (x UW32_32) Float64() float64 { return float64(x) / (1 << UW32_32FractionalBits) }
func (x UW32_32) Float32() float32 { return float32(x) / (1 << UW32_32FractionalBits) }
func (x UW32_32) Nonzero() bool    { return x != 0 }

// Narrow converts back to the format this one widens.
func (x UW32_32) Narrow() UQ16_16 {
	return UQ16_16(x >> (UW32_32FractionalBits - UQ16_16FractionalBits))
}

// Mul narrows both operands first; no quad width product exists.
func (x UW32_32) Mul(y UW32_32) UW32_32 { return x.Narrow().Mul(y.Narrow()) }

// MulNarrow multiplies by a value of the narrowed format.
func (x UW32_32) MulNarrow(y UQ16_16) UW32_32 { return x.Narrow().Mul(y) }

// MulInt narrows first, then multiplies by a plain integer.
func (x UW32_32) MulInt(n uint32) UW32_32 { return x.Narrow().MulInt(n) }

// MulFloat converts the float operand to UW32_32 first, then multiplies.
func (x UW32_32) MulFloat(f float64) UW32_32 { return x.Mul(UW32_32F(f)) }

// Div reduces both operands to the narrowed format before dividing.
func (x UW32_32) Div(y UW32_32) UQ16_16 { return x.DivNarrow(y.Narrow()) }

// DivNarrow divides the widened raw by the narrowed raw.
func (x UW32_32) DivNarrow(y UQ16_16) UQ16_16 { return UQ16_16(uint64(x) / uint64(y)) }

// DivInt divides by a plain integer, keeping the scale.
func (x UW32_32) DivInt(n uint64) UW32_32 { return UW32_32(uint64(x) / n) }

// AddNarrow widens the narrower operand; the sum stays widened.
func (x UW32_32) AddNarrow(y UQ16_16) UW32_32 { return x + y.Widen() }

// SubNarrow widens the narrower operand; the difference stays widened.
func (x UW32_32) SubNarrow(y UQ16_16) UW32_32 { return x - y.Widen() }

func (x UW32_32) Trunc() UW32_32 { return x & UW32_32IntegralMask }

// Traits describe the format.
func (UW32_32) Traits() Traits {
	return Traits{
		Widened:        true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   UW32_32IntegralBits,
		FractionalBits: UW32_32FractionalBits,
	}
}

func (x UW32_32) String() string { return fmt.Sprintf("%v", x.Float64()) }
