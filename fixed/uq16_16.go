package fixed

import (
	"fmt"
	"math"
)

// UQ16_16 is an unsigned 16.16 fixed point value in a uint32. Multiply and
// divide with Mul and Div, never the native operators (see the package
// doc).
type UQ16_16 uint32

const (
	UQ16_16IntegralBits   = 16
	UQ16_16FractionalBits = 16

	UQ16_16FractionalMask = UQ16_16(1)<<UQ16_16FractionalBits - 1
	UQ16_16IntegralMask   = ^UQ16_16FractionalMask

	UQ16_16Epsilon    = UQ16_16(1)
	UQ16_16Min        = UQ16_16(0)
	UQ16_16Max        = UQ16_16(math.MaxUint32)
	UQ16_16RoundError = UQ16_16FractionalMask
)

func UQ16_16I(n uint32) UQ16_16  { return UQ16_16(n) << UQ16_16FractionalBits }
func UQ16_16F(f float64) UQ16_16 { return UQ16_16(f * (1 << UQ16_16FractionalBits)) }

func UQ16_16B(b bool) UQ16_16 {
	if b {
		return UQ16_16I(1)
	}
	return 0
}

func UQ16_16Raw(raw uint32) UQ16_16 { return UQ16_16(raw) }

func (x UQ16_16) Raw() uint32      { return uint32(x) }
func (x UQ16_16) Int() uint32      { return uint32(x >> UQ16_16FractionalBits) }
func (x UQ16_16) Float64() float64 { return float64(x) / (1 << UQ16_16FractionalBits) }
func (x UQ16_16) Float32() float32 { return float32(x) / (1 << UQ16_16FractionalBits) }
func (x UQ16_16) Nonzero() bool    { return x != 0 }

// Widen converts to the widened companion format.
func (x UQ16_16) Widen() UW32_32 {
	return UW32_32(x) << (UW32_32FractionalBits - UQ16_16FractionalBits)
}

// Narrow converts to the narrowed companion format.
func (x UQ16_16) Narrow() UQ8_8 {
	return UQ8_8(x >> (UQ16_16FractionalBits - UQ8_8FractionalBits))
}

// Mul is the widening multiplication.
func (x UQ16_16) Mul(y UQ16_16) UW32_32 { return UW32_32(uint64(x) * uint64(y)) }

// MulInt multiplies by a plain integer into widened storage, keeping scale.
func (x UQ16_16) MulInt(n uint32) UW32_32 { return UW32_32(uint64(x) * uint64(n)) }

// MulFloat converts the float operand to UQ16_16 first, then multiplies.
func (x UQ16_16) MulFloat(f float64) UW32_32 { return x.Mul(UQ16_16F(f)) }

// Div pre-scales the dividend in widened arithmetic.
func (x UQ16_16) Div(y UQ16_16) UQ16_16 {
	return UQ16_16((uint64(x) << UQ16_16FractionalBits) / uint64(y))
}

func (x UQ16_16) DivInt(n uint32) UQ16_16 { return UQ16_16(uint32(x) / n) }

// Fma returns x*y + z, accumulating in the widened format.
func (x UQ16_16) Fma(y, z UQ16_16) UQ16_16 { return (x.Mul(y) + z.Widen()).Narrow() }

func (x UQ16_16) Trunc() UQ16_16 { return x & UQ16_16IntegralMask }

// ToUQ32_32 converts, casting to the wider storage before the shift.
func (x UQ16_16) ToUQ32_32() UQ32_32 {
	return UQ32_32(x) << (UQ32_32FractionalBits - UQ16_16FractionalBits)
}

// Traits describe the format.
func (UQ16_16) Traits() Traits {
	return Traits{
		Bounded:        true,
		Exact:          true,
		IntegralBits:   UQ16_16IntegralBits,
		FractionalBits: UQ16_16FractionalBits,
	}
}

func (x UQ16_16) String() string { return fmt.Sprintf("%v", x.Float64()) }
