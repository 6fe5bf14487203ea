package fixed

import (
	"fmt"
	"math"
)

// Q32_32 is a signed 32.32 fixed point value in an int64. No native
// integer wider than 64 bits is assumed, so Q32_32 has no widened
// companion: Mul, Div and Fma do not exist on it, and an attempt to call
// them does not compile. The native *, / and % operators still do; they
// act on raw cells and must not be used (see the package doc).
type Q32_32 int64

const (
	Q32_32IntegralBits   = 32
	Q32_32FractionalBits = 32

	Q32_32FractionalMask = Q32_32(1)<<Q32_32FractionalBits - 1
	Q32_32IntegralMask   = ^Q32_32FractionalMask

	Q32_32Epsilon    = Q32_32(1)
	Q32_32Min        = Q32_32(math.MinInt64)
	Q32_32Max        = Q32_32(math.MaxInt64)
	Q32_32RoundError = Q32_32FractionalMask
)

func Q32_32I(n int64) Q32_32   { return Q32_32(n) << Q32_32FractionalBits }
func Q32_32F(f float64) Q32_32 { return Q32_32(f * (1 << Q32_32FractionalBits)) }

func Q32_32B(b bool) Q32_32 {
	if b {
		return Q32_32I(1)
	}
	return 0
}

func Q32_32Raw(raw int64) Q32_32 { return Q32_32(raw) }

func (x Q32_32) Raw() int64       { return int64(x) }
func (x Q32_32) Int() int64       { return int64(x >> Q32_32FractionalBits) }
func (x Q32_32) Float64() float64 { return float64(x) / (1 << Q32_32FractionalBits) }
func (x Q32_32) Float32() float32 { return float32(x) / (1 << Q32_32FractionalBits) }
func (x Q32_32) Nonzero() bool    { return x != 0 }

// Narrow converts to the narrowed companion format.
func (x Q32_32) Narrow() Q16_16 {
	return Q16_16(x >> (Q32_32FractionalBits - Q16_16FractionalBits))
}

// DivInt divides by a plain integer; no widened intermediate is needed.
func (x Q32_32) DivInt(n int64) Q32_32 { return Q32_32(int64(x) / n) }

func (x Q32_32) Trunc() Q32_32 { return x & Q32_32IntegralMask }

// ToQ4_4 converts, shifting out fractional bits before the storage cast.
func (x Q32_32) ToQ4_4() Q4_4 {
	return Q4_4(x >> (Q32_32FractionalBits - Q4_4FractionalBits))
}

// ToQ8_8 converts, shifting out fractional bits before the storage cast.
func (x Q32_32) ToQ8_8() Q8_8 {
	return Q8_8(x >> (Q32_32FractionalBits - Q8_8FractionalBits))
}

// ToQ24_8 converts, shifting out fractional bits before the storage cast.
func (x Q32_32) ToQ24_8() Q24_8 {
	return Q24_8(x >> (Q32_32FractionalBits - Q24_8FractionalBits))
}

// Traits describe the format.
func (Q32_32) Traits() Traits {
	return Traits{
		Signed:         true,
		Bounded:        true,
		Exact:          true,
		IntegralBits:   Q32_32IntegralBits,
		FractionalBits: Q32_32FractionalBits,
	}
}

func (x Q32_32) String() string { return fmt.Sprintf("%v", x.Float64()) }
