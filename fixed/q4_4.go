package fixed

import (
	"fmt"
	"math"
)

// Q4_4 is a signed 4.4 fixed point value in an int8. It is the narrowest
// format in the catalogue; it has no narrowed companion. Multiply and
// divide with Mul and Div, never the native operators (see the package
// doc).
type Q4_4 int8

const (
	Q4_4IntegralBits   = 4
	Q4_4FractionalBits = 4

	Q4_4FractionalMask = Q4_4(1)<<Q4_4FractionalBits - 1
	Q4_4IntegralMask   = ^Q4_4FractionalMask

	Q4_4Epsilon    = Q4_4(1)
	Q4_4Min        = Q4_4(math.MinInt8)
	Q4_4Max        = Q4_4(math.MaxInt8)
	Q4_4RoundError = Q4_4FractionalMask
)

func Q4_4I(n int8) Q4_4    { return Q4_4(n) << Q4_4FractionalBits }
func Q4_4F(f float64) Q4_4 { return Q4_4(f * (1 << Q4_4FractionalBits)) }

func Q4_4B(b bool) Q4_4 {
	if b {
		return Q4_4I(1)
	}
	return 0
}

func Q4_4Raw(raw int8) Q4_4 { return Q4_4(raw) }

func (x Q4_4) Raw() int8        { return int8(x) }
func (x Q4_4) Int() int8        { return int8(x >> Q4_4FractionalBits) }
func (x Q4_4) Float64() float64 { return float64(x) / (1 << Q4_4FractionalBits) }
func (x Q4_4) Float32() float32 { return float32(x) / (1 << Q4_4FractionalBits) }
func (x Q4_4) Nonzero() bool    { return x != 0 }

// Widen converts to the widened companion format.
func (x Q4_4) Widen() W8_8 {
	return W8_8(x) << (W8_8FractionalBits - Q4_4FractionalBits)
}

// Mul is the widening multiplication.
func (x Q4_4) Mul(y Q4_4) W8_8 { return W8_8(int16(x) * int16(y)) }

// MulInt multiplies by a plain integer into widened storage, keeping scale.
func (x Q4_4) MulInt(n int8) W8_8 { return W8_8(int16(x) * int16(n)) }

// MulFloat converts the float operand to Q4_4 first, then multiplies.
func (x Q4_4) MulFloat(f float64) W8_8 { return x.Mul(Q4_4F(f)) }

// Div pre-scales the dividend in widened arithmetic.
func (x Q4_4) Div(y Q4_4) Q4_4 {
	return Q4_4((int16(x) << Q4_4FractionalBits) / int16(y))
}

func (x Q4_4) DivInt(n int8) Q4_4 { return Q4_4(int8(x) / n) }

// Fma returns x*y + z, accumulating in the widened format.
func (x Q4_4) Fma(y, z Q4_4) Q4_4 { return (x.Mul(y) + z.Widen()).Narrow() }

func (x Q4_4) Trunc() Q4_4 { return x & Q4_4IntegralMask }

// ToQ8_8 converts, casting to the wider storage before the shift.
func (x Q4_4) ToQ8_8() Q8_8 {
	return Q8_8(x) << (Q8_8FractionalBits - Q4_4FractionalBits)
}

// ToQ16_16 converts, casting to the wider storage before the shift.
func (x Q4_4) ToQ16_16() Q16_16 {
	return Q16_16(x) << (Q16_16FractionalBits - Q4_4FractionalBits)
}

// ToQ24_8 converts, casting to the wider storage before the shift.
func (x Q4_4) ToQ24_8() Q24_8 {
	return Q24_8(x) << (Q24_8FractionalBits - Q4_4FractionalBits)
}

// ToQ32_32 converts, casting to the wider storage before the shift.
func (x Q4_4) ToQ32_32() Q32_32 {
	return Q32_32(x) << (Q32_32FractionalBits - Q4_4FractionalBits)
}

// Traits describe the format.
func (Q4_4) Traits() Traits {
	return Traits{
		Signed:         true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   Q4_4IntegralBits,
		FractionalBits: Q4_4FractionalBits,
	}
}

func (x Q4_4) String() string { return fmt.Sprintf("%v", x.Float64()) }
