package fixed

import (
	"fmt"
	"math"
)

// UQ32_32 is an unsigned 32.32 fixed point value in a uint64. Like Q32_32
// it has no widened companion, so Mul, Div and Fma do not exist on it. The
// native *, / and % operators still do; they act on raw cells and must not
// be used (see the package doc).
type UQ32_32 uint64

const (
	UQ32_32IntegralBits   = 32
	UQ32_32FractionalBits = 32

	UQ32_32FractionalMask = UQ32_32(1)<<UQ32_32FractionalBits - 1
	UQ32_32IntegralMask   = ^UQ32_32FractionalMask

	UQ32_32Epsilon    = UQ32_32(1)
	UQ32_32Min        = UQ32_32(0)
	UQ32_32Max        = UQ32_32(math.MaxUint64)
	UQ32_32RoundError = UQ32_32FractionalMask
)

func UQ32_32I(n uint64) UQ32_32  { return UQ32_32(n) << UQ32_32FractionalBits }
func UQ32_32F(f float64) UQ32_32 { return UQ32_32(f * (1 << UQ32_32FractionalBits)) }

func UQ32_32B(b bool) UQ32_32 {
	if b {
		return UQ32_32I(1)
	}
	return 0
}

func UQ32_32Raw(raw uint64) UQ32_32 { return UQ32_32(raw) }

func (x UQ32_32) Raw() uint64      { return uint64(x) }
func (x UQ32_32) Int() uint64      { return uint64(x >> UQ32_32FractionalBits) }
func (x UQ32_32) Float64() float64 { return float64(x) / (1 << UQ32_32FractionalBits) }
func (x UQ32_32) Float32() float32 { return float32(x) / (1 << UQ32_32FractionalBits) }
func (x UQ32_32) Nonzero() bool    { return x != 0 }

// Narrow converts to the narrowed companion format.
func (x UQ32_32) Narrow() UQ16_16 {
	return UQ16_16(x >> (UQ32_32FractionalBits - UQ16_16FractionalBits))
}

// DivInt divides by a plain integer; no widened intermediate is needed.
func (x UQ32_32) DivInt(n uint64) UQ32_32 { return UQ32_32(uint64(x) / n) }

func (x UQ32_32) Trunc() UQ32_32 { return x & UQ32_32IntegralMask }

// ToUQ8_8 converts, shifting out fractional bits before the storage cast.
func (x UQ32_32) ToUQ8_8() UQ8_8 {
	return UQ8_8(x >> (UQ32_32FractionalBits - UQ8_8FractionalBits))
}

// Traits describe the format.
func (UQ32_32) Traits() Traits {
	return Traits{
		Bounded:        true,
		Exact:          true,
		IntegralBits:   UQ32_32IntegralBits,
		FractionalBits: UQ32_32FractionalBits,
	}
}

func (x UQ32_32) String() string { return fmt.Sprintf("%v", x.Float64()) }
