package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestW32_32_Narrow(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(1.5), W32_32F(1.5).Narrow())
	assert.Equal(Q16_16F(-1.5), W32_32F(-1.5).Narrow())
	assert.Equal(Q16_16F(1.5), Q16_16F(1.5).Widen().Narrow())
}

func TestW32_32_Mul_NarrowsFirst(t *testing.T) {
	assert := assert.New(t)

	// No quad width product exists: both operands drop to Q16.16 before
	// the multiply, and the result is a fresh widened product.
	assert.Equal(W32_32F(6.0), W32_32F(2.0).Mul(W32_32F(3.0)))
	assert.Equal(W32_32F(6.0), W32_32F(2.0).MulNarrow(Q16_16F(3.0)))

	// MulInt keeps the narrowed operand's scale in the widened cell.
	assert.Equal(int64(196608), W32_32F(1.5).MulInt(2).Raw())

	assert.Equal(W32_32F(3.0), W32_32F(1.5).MulFloat(2.0))
}

func TestW32_32_Div(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(1.5), W32_32F(3.0).Div(W32_32F(2.0)))
	assert.Equal(Q16_16F(2.0), W32_32F(3.0).DivNarrow(Q16_16F(1.5)))
	assert.Equal(W32_32F(1.5), W32_32F(3.0).DivInt(2))
}

func TestW32_32_Accumulate(t *testing.T) {
	assert := assert.New(t)

	acc := Q16_16F(1.5).Mul(Q16_16F(2.0))
	acc = acc.AddNarrow(Q16_16F(0.5))
	assert.Equal(3.5, acc.Float64())

	acc = acc.SubNarrow(Q16_16F(1.5))
	assert.Equal(2.0, acc.Float64())

	// Widened plus widened stays widened via the native operator.
	assert.Equal(W32_32F(4.0), acc+W32_32F(2.0))
}

func TestW32_32_Trunc(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(W32_32F(1.0), W32_32F(1.5).Trunc())
	assert.Equal(W32_32F(-2.0), W32_32F(-1.5).Trunc())
}

func TestW32_32_Construct(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(3)<<32, W32_32I(3).Raw())
	assert.Equal(int64(3), W32_32I(3).Int())
	assert.Equal(1.5, W32_32F(1.5).Float64())
	assert.Equal(W32_32F(0.5), W32_32Raw(1<<31))
	assert.True(W32_32F(1.5).Nonzero())

	assert.Equal(W32_32I(1), W32_32B(true))
	assert.Equal(W32_32(0), W32_32B(false))
}
