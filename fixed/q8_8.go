package fixed

import (
	"fmt"
	"math"
)

// Q8_8 is a signed 8.8 fixed point value in an int16. Multiply and divide
// with Mul and Div, never the native operators (see the package doc).
type Q8_8 int16

const (
	Q8_8IntegralBits   = 8
	Q8_8FractionalBits = 8

	Q8_8FractionalMask = Q8_8(1)<<Q8_8FractionalBits - 1
	Q8_8IntegralMask   = ^Q8_8FractionalMask

	Q8_8Epsilon    = Q8_8(1)
	Q8_8Min        = Q8_8(math.MinInt16)
	Q8_8Max        = Q8_8(math.MaxInt16)
	Q8_8RoundError = Q8_8FractionalMask
)

func Q8_8I(n int16) Q8_8   { return Q8_8(n) << Q8_8FractionalBits }
func Q8_8F(f float64) Q8_8 { return Q8_8(f * (1 << Q8_8FractionalBits)) }

func Q8_8B(b bool) Q8_8 {
	if b {
		return Q8_8I(1)
	}
	return 0
}

func Q8_8Raw(raw int16) Q8_8 { return Q8_8(raw) }

func (x Q8_8) Raw() int16       { return int16(x) }
func (x Q8_8) Int() int16       { return int16(x >> Q8_8FractionalBits) }
func (x Q8_8) Float64() float64 { return float64(x) / (1 << Q8_8FractionalBits) }
func (x Q8_8) Float32() float32 { return float32(x) / (1 << Q8_8FractionalBits) }
func (x Q8_8) Nonzero() bool    { return x != 0 }

// Widen converts to the widened companion format.
func (x Q8_8) Widen() W16_16 {
	return W16_16(x) << (W16_16FractionalBits - Q8_8FractionalBits)
}

// Narrow converts to the narrowed companion format.
func (x Q8_8) Narrow() Q4_4 {
	return Q4_4(x >> (Q8_8FractionalBits - Q4_4FractionalBits))
}

// Mul is the widening multiplication.
func (x Q8_8) Mul(y Q8_8) W16_16 { return W16_16(int32(x) * int32(y)) }

// MulInt multiplies by a plain integer into widened storage, keeping scale.
func (x Q8_8) MulInt(n int16) W16_16 { return W16_16(int32(x) * int32(n)) }

// MulFloat converts the float operand to Q8_8 first, then multiplies.
func (x Q8_8) MulFloat(f float64) W16_16 { return x.Mul(Q8_8F(f)) }

// Div pre-scales the dividend in widened arithmetic.
func (x Q8_8) Div(y Q8_8) Q8_8 {
	return Q8_8((int32(x) << Q8_8FractionalBits) / int32(y))
}

func (x Q8_8) DivInt(n int16) Q8_8 { return Q8_8(int16(x) / n) }

// Fma returns x*y + z, accumulating in the widened format.
func (x Q8_8) Fma(y, z Q8_8) Q8_8 { return (x.Mul(y) + z.Widen()).Narrow() }

func (x Q8_8) Trunc() Q8_8 { return x & Q8_8IntegralMask }

// ToQ16_16 converts, casting to the wider storage before the shift.
func (x Q8_8) ToQ16_16() Q16_16 {
	return Q16_16(x) << (Q16_16FractionalBits - Q8_8FractionalBits)
}

// ToQ24_8 converts; the fractional bit counts match, so only the storage
// cell changes.
func (x Q8_8) ToQ24_8() Q24_8 { return Q24_8(x) }

// ToQ32_32 converts, casting to the wider storage before the shift.
func (x Q8_8) ToQ32_32() Q32_32 {
	return Q32_32(x) << (Q32_32FractionalBits - Q8_8FractionalBits)
}

// Traits describe the format.
func (Q8_8) Traits() Traits {
	return Traits{
		Signed:         true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   Q8_8IntegralBits,
		FractionalBits: Q8_8FractionalBits,
	}
}

func (x Q8_8) String() string { return fmt.Sprintf("%v", x.Float64()) }
