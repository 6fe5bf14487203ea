package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQ16_16_Construct(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int32(5<<16), Q16_16I(5).Raw())
	assert.Equal(int32(5), Q16_16I(5).Int())
	assert.Equal(int32(-5), Q16_16I(-5).Int())

	assert.Equal(int32(98304), Q16_16F(1.5).Raw())
	assert.Equal(1.5, Q16_16F(1.5).Float64())
	assert.Equal(float32(1.5), Q16_16F(1.5).Float32())

	assert.Equal(Q16_16I(1), Q16_16B(true))
	assert.Equal(Q16_16(0), Q16_16B(false))

	assert.Equal(Q16_16F(0.5), Q16_16Raw(0x8000))
}

func TestQ16_16_Int_Floors(t *testing.T) {
	assert := assert.New(t)

	// Arithmetic right shift lands toward negative infinity, not zero.
	assert.Equal(int32(1), Q16_16F(1.5).Int())
	assert.Equal(int32(-2), Q16_16F(-1.5).Int())
	assert.Equal(int32(-1), Q16_16F(-0.5).Int())
}

func TestQ16_16_Mul(t *testing.T) {
	assert := assert.New(t)

	a := Q16_16F(1.5)
	b := Q16_16F(2.0)

	wide := a.Mul(b)
	assert.Equal(int64(98304)*int64(131072), wide.Raw())
	assert.Equal(3.0, wide.Float64())

	assert.Equal(Q16_16F(3.0), wide.Narrow())
	assert.Equal(int32(196608), wide.Narrow().Raw())
}

func TestQ16_16_RawProductTruncates(t *testing.T) {
	assert := assert.New(t)

	// The native operator multiplies raw cells with no rescale and no
	// widening; the product overflows the int32 cell silently. Mul is
	// the only correct spelling of multiplication.
	native := Q16_16F(1.5) * Q16_16F(2.0)
	assert.Equal(int32(0), native.Raw())
	assert.Equal(Q16_16F(3.0), Q16_16F(1.5).Mul(Q16_16F(2.0)).Narrow())
}

func TestQ16_16_MulInt(t *testing.T) {
	assert := assert.New(t)

	// The integer carries no fractional bits; the widened cell holds the
	// raw product at the operand's own scale.
	assert.Equal(int64(196608), Q16_16F(1.5).MulInt(2).Raw())
	assert.Equal(int64(-98304), Q16_16F(1.5).MulInt(-1).Raw())
}

func TestQ16_16_MulFloat(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(1.5).Mul(Q16_16F(2.5)), Q16_16F(1.5).MulFloat(2.5))
}

func TestQ16_16_Div(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(2.0), Q16_16I(3).Div(Q16_16F(1.5)))

	// Pre-scaling the dividend keeps the fractional precision.
	third := Q16_16I(1).Div(Q16_16I(3))
	assert.Equal(int32(21845), third.Raw())

	assert.Equal(Q16_16F(1.5), Q16_16I(3).DivInt(2))
	assert.Equal(int32(-98304/2), Q16_16F(-1.5).DivInt(2).Raw())
}

func TestQ16_16_Fma(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(3.5), Q16_16F(1.5).Fma(Q16_16F(2.0), Q16_16F(0.5)))
}

func TestQ16_16_MultiplyAccumulate(t *testing.T) {
	assert := assert.New(t)

	a, b := Q16_16F(1.5), Q16_16F(2.0)
	c, d := Q16_16F(0.5), Q16_16F(4.0)

	acc := a.Mul(b) + c.Mul(d)
	assert.Equal(5.0, acc.Float64())
	assert.Equal(Q16_16F(5.0), acc.Narrow())
}

func TestQ16_16_Trunc(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16I(1), Q16_16F(1.5).Trunc())

	// Masking lands negative values toward negative infinity.
	assert.Equal(Q16_16I(-2), Q16_16F(-1.5).Trunc())
}

func TestQ16_16_Compare(t *testing.T) {
	assert := assert.New(t)

	a := Q16_16F(1.5)
	b := Q16_16F(2.0)

	assert.True(a == a)
	assert.True(a < b)
	assert.True(b > a)
	assert.True(a.Nonzero())
	assert.False(Q16_16(0).Nonzero())
}

func TestQ16_16_WidenNarrow(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(W32_32F(1.5), Q16_16F(1.5).Widen())
	assert.Equal(Q8_8F(1.5), Q16_16F(1.5).Narrow())
}

func TestQ16_16_Convert(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q4_4F(1.5), Q16_16F(1.5).ToQ4_4())
	assert.Equal(Q24_8F(1.5), Q16_16F(1.5).ToQ24_8())
	assert.Equal(Q32_32F(1.5), Q16_16F(1.5).ToQ32_32())

	// Fewer fractional bits: the shift happens before the storage cast,
	// so a value too wide for the destination clips only at the cast.
	assert.Equal(Q4_4F(-1.5), Q16_16F(-1.5).ToQ4_4())
}

func TestQ16_16_Limits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int32(1), Q16_16Epsilon.Raw())
	assert.Equal(int32(0xffff), Q16_16RoundError.Raw())
	assert.True(Q16_16Min < Q16_16(0))
	assert.True(Q16_16Max > Q16_16(0))

	max := Q16_16Max
	assert.Equal(Q16_16Min, max+1)
}

func TestQ16_16_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.5", Q16_16F(1.5).String())
	assert.Equal("-2", Q16_16I(-2).String())
}
