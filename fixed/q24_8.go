package fixed

import (
	"fmt"
	"math"
)

// Q24_8 is a signed 24.8 fixed point value in an int32: the asymmetric
// split trades fractional precision for integral range. Its narrowed
// companion (a 12.4 in an int16) is not in the catalogue, so Q24_8 has no
// Narrow. Multiply and divide with Mul and Div, never the native operators
// (see the package doc).
type Q24_8 int32

const (
	Q24_8IntegralBits   = 24
	Q24_8FractionalBits = 8

	Q24_8FractionalMask = Q24_8(1)<<Q24_8FractionalBits - 1
	Q24_8IntegralMask   = ^Q24_8FractionalMask

	Q24_8Epsilon    = Q24_8(1)
	Q24_8Min        = Q24_8(math.MinInt32)
	Q24_8Max        = Q24_8(math.MaxInt32)
	Q24_8RoundError = Q24_8FractionalMask
)

func Q24_8I(n int32) Q24_8   { return Q24_8(n) << Q24_8FractionalBits }
func Q24_8F(f float64) Q24_8 { return Q24_8(f * (1 << Q24_8FractionalBits)) }

func Q24_8B(b bool) Q24_8 {
	if b {
		return Q24_8I(1)
	}
	return 0
}

func Q24_8Raw(raw int32) Q24_8 { return Q24_8(raw) }

func (x Q24_8) Raw() int32       { return int32(x) }
func (x Q24_8) Int() int32       { return int32(x >> Q24_8FractionalBits) }
func (x Q24_8) Float64() float64 { return float64(x) / (1 << Q24_8FractionalBits) }
func (x Q24_8) Float32() float32 { return float32(x) / (1 << Q24_8FractionalBits) }
func (x Q24_8) Nonzero() bool    { return x != 0 }

// Widen converts to the widened companion format.
func (x Q24_8) Widen() W48_16 {
	return W48_16(x) << (W48_16FractionalBits - Q24_8FractionalBits)
}

// Mul is the widening multiplication.
func (x Q24_8) Mul(y Q24_8) W48_16 { return W48_16(int64(x) * int64(y)) }

// MulInt multiplies by a plain integer into widened storage, keeping scale.
func (x Q24_8) MulInt(n int32) W48_16 { return W48_16(int64(x) * int64(n)) }

// MulFloat converts the float operand to Q24_8 first, then multiplies.
func (x Q24_8) MulFloat(f float64) W48_16 { return x.Mul(Q24_8F(f)) }

// Div pre-scales the dividend in widened arithmetic.
func (x Q24_8) Div(y Q24_8) Q24_8 {
	return Q24_8((int64(x) << Q24_8FractionalBits) / int64(y))
}

func (x Q24_8) DivInt(n int32) Q24_8 { return Q24_8(int32(x) / n) }

// Fma returns x*y + z, accumulating in the widened format.
func (x Q24_8) Fma(y, z Q24_8) Q24_8 { return (x.Mul(y) + z.Widen()).Narrow() }

func (x Q24_8) Trunc() Q24_8 { return x & Q24_8IntegralMask }

// ToQ4_4 converts, shifting out fractional bits before the storage cast.
func (x Q24_8) ToQ4_4() Q4_4 {
	return Q4_4(x >> (Q24_8FractionalBits - Q4_4FractionalBits))
}

// ToQ8_8 converts; the fractional bit counts match, so only the storage
// cell changes.
func (x Q24_8) ToQ8_8() Q8_8 { return Q8_8(x) }

// ToQ16_16 converts, casting to the wider storage before the shift.
func (x Q24_8) ToQ16_16() Q16_16 {
	return Q16_16(x) << (Q16_16FractionalBits - Q24_8FractionalBits)
}

// ToQ32_32 converts, casting to the wider storage before the shift.
func (x Q24_8) ToQ32_32() Q32_32 {
	return Q32_32(x) << (Q32_32FractionalBits - Q24_8FractionalBits)
}

// Traits describe the format.
func (Q24_8) Traits() Traits {
	return Traits{
		Signed:         true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   Q24_8IntegralBits,
		FractionalBits: Q24_8FractionalBits,
	}
}

func (x Q24_8) String() string { return fmt.Sprintf("%v", x.Float64()) }
