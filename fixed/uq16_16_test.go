package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUQ16_16_Construct(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(5<<16), UQ16_16I(5).Raw())
	assert.Equal(uint32(5), UQ16_16I(5).Int())
	assert.Equal(1.5, UQ16_16F(1.5).Float64())
	assert.Equal(UQ16_16I(1), UQ16_16B(true))
	assert.Equal(UQ16_16(0), UQ16_16B(false))
	assert.Equal(UQ16_16F(0.5), UQ16_16Raw(0x8000))
}

func TestUQ16_16_Mul(t *testing.T) {
	assert := assert.New(t)

	wide := UQ16_16F(1.5).Mul(UQ16_16F(2.0))
	assert.Equal(uint64(98304)*uint64(131072), wide.Raw())
	assert.Equal(3.0, wide.Float64())
	assert.Equal(UQ16_16F(3.0), wide.Narrow())

	assert.Equal(wide, UQ16_16F(1.5).MulFloat(2.0))
	assert.Equal(uint64(196608), UQ16_16F(1.5).MulInt(2).Raw())

	assert.Equal(UW32_32F(3.0), UQ16_16F(1.5).Widen().MulFloat(2.0))
	assert.Equal(UW32_32I(1), UW32_32B(true))
}

func TestUQ16_16_Div(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(UQ16_16F(2.0), UQ16_16I(3).Div(UQ16_16F(1.5)))
	assert.Equal(uint32(21845), UQ16_16I(1).Div(UQ16_16I(3)).Raw())
	assert.Equal(UQ16_16F(1.5), UQ16_16I(3).DivInt(2))
}

func TestUQ16_16_Fma(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(UQ16_16F(3.5), UQ16_16F(1.5).Fma(UQ16_16F(2.0), UQ16_16F(0.5)))
}

func TestUQ16_16_Trunc(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(UQ16_16I(1), UQ16_16F(1.5).Trunc())
}

func TestUQ16_16_WidenNarrow(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(UW32_32F(1.5), UQ16_16F(1.5).Widen())
	assert.Equal(UQ8_8F(1.5), UQ16_16F(1.5).Narrow())
	assert.Equal(UQ32_32F(1.5), UQ16_16F(1.5).ToUQ32_32())
}

func TestUQ16_16_Limits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(UQ16_16(0), UQ16_16Min)
	assert.Equal(uint32(1), UQ16_16Epsilon.Raw())
	assert.Equal(uint32(0xffff), UQ16_16RoundError.Raw())

	max := UQ16_16Max
	assert.Equal(UQ16_16Min, max+1)
}
