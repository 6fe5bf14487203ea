package fixed

import (
	"fmt"
	"math"
)

// Q16_16 is a signed 16.16 fixed point value in an int32. It is the
// workhorse format; the package documentation uses it for all examples.
// Multiply and divide with Mul and Div, never the native operators, which
// act on raw cells and truncate (see the package doc).
type Q16_16 int32

const (
	Q16_16IntegralBits   = 16
	Q16_16FractionalBits = 16

	Q16_16FractionalMask = Q16_16(1)<<Q16_16FractionalBits - 1
	Q16_16IntegralMask   = ^Q16_16FractionalMask

	Q16_16Epsilon    = Q16_16(1)             // Smallest representable step.
	Q16_16Min        = Q16_16(math.MinInt32) // Most negative value.
	Q16_16Max        = Q16_16(math.MaxInt32) // Most positive value.
	Q16_16RoundError = Q16_16FractionalMask  // Worst case rounding error.
)

// Q16_16I makes a Q16_16 from an integer.
func Q16_16I(n int32) Q16_16 { return Q16_16(n) << Q16_16FractionalBits }

// Q16_16F makes a Q16_16 from a float, truncating toward zero.
func Q16_16F(f float64) Q16_16 { return Q16_16(f * (1 << Q16_16FractionalBits)) }

// Q16_16B makes a Q16_16 from a bool.
func Q16_16B(b bool) Q16_16 {
	if b {
		return Q16_16I(1)
	}
	return 0
}

// Q16_16Raw makes a Q16_16 directly from its storage cell.
func Q16_16Raw(raw int32) Q16_16 { return Q16_16(raw) }

// Raw returns the storage cell.
func (x Q16_16) Raw() int32 { return int32(x) }

// Int returns the integral part. The raw right shift floors toward
// negative infinity for negative values.
func (x Q16_16) Int() int32 { return int32(x >> Q16_16FractionalBits) }

// Float64 returns the value as a float64.
func (x Q16_16) Float64() float64 { return float64(x) / (1 << Q16_16FractionalBits) }

// Float32 returns the value as a float32.
func (x Q16_16) Float32() float32 { return float32(x) / (1 << Q16_16FractionalBits) }

// Nonzero reports whether the value is not zero. Go has no contextual
// bool conversion, so this stands in for use as a condition.
func (x Q16_16) Nonzero() bool { return x != 0 }

// Widen converts to the widened companion format.
func (x Q16_16) Widen() W32_32 {
	return W32_32(x) << (W32_32FractionalBits - Q16_16FractionalBits)
}

// Narrow converts to the narrowed companion format.
func (x Q16_16) Narrow() Q8_8 {
	return Q8_8(x >> (Q16_16FractionalBits - Q8_8FractionalBits))
}

// Mul is the widening multiplication: both raws widen to int64 before the
// multiply, so no product bit is lost.
func (x Q16_16) Mul(y Q16_16) W32_32 { return W32_32(int64(x) * int64(y)) }

// MulInt multiplies by a plain integer into widened storage. The integer
// carries no fractional bits, so the raw product keeps the operand's scale.
func (x Q16_16) MulInt(n int32) W32_32 { return W32_32(int64(x) * int64(n)) }

// MulFloat converts the float operand to Q16_16 first, then multiplies.
// Raw cells of different scales never mix.
func (x Q16_16) MulFloat(f float64) W32_32 { return x.Mul(Q16_16F(f)) }

// Div pre-scales the dividend in widened arithmetic before the integer
// division, recovering the fractional precision plain division would lose.
func (x Q16_16) Div(y Q16_16) Q16_16 {
	return Q16_16((int64(x) << Q16_16FractionalBits) / int64(y))
}

// DivInt divides by a plain integer, keeping the scale.
func (x Q16_16) DivInt(n int32) Q16_16 { return Q16_16(int32(x) / n) }

// Fma returns x*y + z, accumulating in the widened format.
func (x Q16_16) Fma(y, z Q16_16) Q16_16 { return (x.Mul(y) + z.Widen()).Narrow() }

// Trunc clears the fractional bits. For negative values spanning a
// fractional boundary the mask lands toward negative infinity, not zero.
func (x Q16_16) Trunc() Q16_16 { return x & Q16_16IntegralMask }

// ToQ4_4 converts, shifting out fractional bits before the storage cast
// so integral bits are not clipped early.
func (x Q16_16) ToQ4_4() Q4_4 {
	return Q4_4(x >> (Q16_16FractionalBits - Q4_4FractionalBits))
}

// ToQ24_8 converts within the same storage width.
func (x Q16_16) ToQ24_8() Q24_8 {
	return Q24_8(x >> (Q16_16FractionalBits - Q24_8FractionalBits))
}

// ToQ32_32 converts, casting to the wider storage before the shift so no
// bits are pushed out of the narrower cell.
func (x Q16_16) ToQ32_32() Q32_32 {
	return Q32_32(x) << (Q32_32FractionalBits - Q16_16FractionalBits)
}

// Traits describe the format.
func (Q16_16) Traits() Traits {
	return Traits{
		Signed:         true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   Q16_16IntegralBits,
		FractionalBits: Q16_16FractionalBits,
	}
}

func (x Q16_16) String() string { return fmt.Sprintf("%v", x.Float64()) }
