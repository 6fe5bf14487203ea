package fixed

import (
	"fmt"
	"math"
)

// UQ8_8 is an unsigned 8.8 fixed point value in a uint16. Its narrowed
// companion (an unsigned 4.4) is not in the catalogue, so UQ8_8 has no
// Narrow. Multiply and divide with Mul and Div, never the native operators
// (see the package doc).
type UQ8_8 uint16

const (
	UQ8_8IntegralBits   = 8
	UQ8_8FractionalBits = 8

	UQ8_8FractionalMask = UQ8_8(1)<<UQ8_8FractionalBits - 1
	UQ8_8IntegralMask   = ^UQ8_8FractionalMask

	UQ8_8Epsilon    = UQ8_8(1)
	UQ8_8Min        = UQ8_8(0)
	UQ8_8Max        = UQ8_8(math.MaxUint16)
	UQ8_8RoundError = UQ8_8FractionalMask
)

func UQ8_8I(n uint16) UQ8_8  { return UQ8_8(n) << UQ8_8FractionalBits }
func UQ8_8F(f float64) UQ8_8 { return UQ8_8(f * (1 << UQ8_8FractionalBits)) }

func UQ8_8B(b bool) UQ8_8 {
	if b {
		return UQ8_8I(1)
	}
	return 0
}

func UQ8_8Raw(raw uint16) UQ8_8 { return UQ8_8(raw) }

func (x UQ8_8) Raw() uint16      { return uint16(x) }
func (x UQ8_8) Int() uint16      { return uint16(x >> UQ8_8FractionalBits) }
func (x UQ8_8) Float64() float64 { return float64(x) / (1 << UQ8_8FractionalBits) }
func (x UQ8_8) Float32() float32 { return float32(x) / (1 << UQ8_8FractionalBits) }
func (x UQ8_8) Nonzero() bool    { return x != 0 }

// Widen converts to the widened companion format.
func (x UQ8_8) Widen() UW16_16 {
	return UW16_16(x) << (UW16_16FractionalBits - UQ8_8FractionalBits)
}

// Mul is the widening multiplication.
func (x UQ8_8) Mul(y UQ8_8) UW16_16 { return UW16_16(uint32(x) * uint32(y)) }

// MulInt multiplies by a plain integer into widened storage, keeping scale.
func (x UQ8_8) MulInt(n uint16) UW16_16 { return UW16_16(uint32(x) * uint32(n)) }

// MulFloat converts the float operand to UQ8_8 first, then multiplies.
func (x UQ8_8) MulFloat(f float64) UW16_16 { return x.Mul(UQ8_8F(f)) }

// Div pre-scales the dividend in widened arithmetic.
func (x UQ8_8) Div(y UQ8_8) UQ8_8 {
	return UQ8_8((uint32(x) << UQ8_8FractionalBits) / uint32(y))
}

func (x UQ8_8) DivInt(n uint16) UQ8_8 { return UQ8_8(uint16(x) / n) }

// Fma returns x*y + z, accumulating in the widened format.
func (x UQ8_8) Fma(y, z UQ8_8) UQ8_8 { return (x.Mul(y) + z.Widen()).Narrow() }

func (x UQ8_8) Trunc() UQ8_8 { return x & UQ8_8IntegralMask }

// ToUQ16_16 converts, casting to the wider storage before the shift.
func (x UQ8_8) ToUQ16_16() UQ16_16 {
	return UQ16_16(x) << (UQ16_16FractionalBits - UQ8_8FractionalBits)
}

// ToUQ32_32 converts, casting to the wider storage before the shift.
func (x UQ8_8) ToUQ32_32() UQ32_32 {
	return UQ32_32(x) << (UQ32_32FractionalBits - UQ8_8FractionalBits)
}

// Traits describe the format.
func (UQ8_8) Traits() Traits {
	return Traits{
		Bounded:        true,
		Exact:          true,
		IntegralBits:   UQ8_8IntegralBits,
		FractionalBits: UQ8_8FractionalBits,
	}
}

func (x UQ8_8) String() string { return fmt.Sprintf("%v", x.Float64()) }
