package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FP_ZERO, Classify(Q16_16(0)))
	assert.Equal(FP_NORMAL, Classify(Q16_16F(1.5)))
	assert.Equal(FP_NORMAL, Classify(Q16_16F(-1.5)))

	assert.Equal("zero", FP_ZERO.String())
	assert.Equal("normal", FP_NORMAL.String())
}

func TestPredicates(t *testing.T) {
	assert := assert.New(t)

	x := Q16_16F(-1.5)

	assert.True(IsFinite(x))
	assert.False(IsInf(x))
	assert.False(IsNaN(x))
	assert.True(IsNormal(x))
	assert.False(IsNormal(Q16_16(0)))

	assert.True(Signbit(x))
	assert.False(Signbit(Q16_16F(1.5)))
	assert.False(Signbit(UQ16_16F(1.5)))
}

func TestMinMax(t *testing.T) {
	assert := assert.New(t)

	a := Q16_16F(1.5)
	b := Q16_16F(-2.0)

	assert.Equal(b, Min(a, b))
	assert.Equal(a, Max(a, b))
	assert.Equal(a, Min(a, a))

	// Comparison happens on raw storage, exactly as the native operators.
	assert.Equal(UQ8_8F(0.5), Min(UQ8_8F(0.5), UQ8_8F(3.0)))
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(1.5), Abs(Q16_16F(-1.5)))
	assert.Equal(Q16_16F(1.5), Abs(Q16_16F(1.5)))

	// Unsigned formats cannot be negative; Abs is the identity.
	assert.Equal(UQ16_16F(1.5), Abs(UQ16_16F(1.5)))
	assert.Equal(UQ16_16Max, Abs(UQ16_16Max))
}

func TestFdim(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(0.5), Fdim(Q16_16F(2.0), Q16_16F(1.5)))
	assert.Equal(Q16_16(0), Fdim(Q16_16F(1.5), Q16_16F(2.0)))
}

func TestCopysign(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Q16_16F(-1.5), Copysign(Q16_16F(1.5), Q16_16F(-7.0)))
	assert.Equal(Q16_16F(1.5), Copysign(Q16_16F(-1.5), Q16_16F(7.0)))
	assert.Equal(Q16_16F(1.5), Copysign(Q16_16F(1.5), Q16_16(0)))
}

func TestTraits(t *testing.T) {
	assert := assert.New(t)

	qt := Q16_16F(0).Traits()
	assert.True(qt.Signed)
	assert.False(qt.Widened)
	assert.True(qt.Bounded)
	assert.True(qt.Exact)
	assert.Equal(uint(16), qt.IntegralBits)
	assert.Equal(uint(16), qt.FractionalBits)

	wt := W32_32F(0).Traits()
	assert.True(wt.Signed)
	assert.True(wt.Widened)
	assert.Equal(uint(32), wt.IntegralBits)

	ut := UQ8_8F(0).Traits()
	assert.False(ut.Signed)
	assert.False(ut.Widened)
	assert.Equal(uint(8), ut.FractionalBits)

	// Every format satisfies the introspection surface.
	for _, n := range []Number{
		Q4_4F(0), Q8_8F(0), Q16_16F(0), Q24_8F(0), Q32_32F(0),
		UQ8_8F(0), UQ16_16F(0), UQ32_32F(0),
		W8_8F(0), W16_16F(0), W32_32F(0), W48_16F(0),
		UW16_16F(0), UW32_32F(0),
	} {
		traits := n.Traits()
		assert.True(traits.Bounded)
		assert.True(traits.Exact)
		assert.NotZero(traits.IntegralBits)
	}
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Contains(defines, "Q16_16_EPSILON")
	assert.Contains(defines, "Q16_16_MAX")
	assert.Contains(defines, "Q16_16_MIN")
	assert.Contains(defines, "Q16_16_ROUND_ERROR")
}
