package fixed

import (
	"fmt"
	"iter"
	"maps"
)

// Value is the set of raw storage types backing the fixed point formats.
type Value interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Traits describes a fixed point format for numeric introspection.
type Traits struct {
	Signed         bool // Raw storage is a signed integer.
	Widened        bool // Format is the widened product of a narrower one.
	Bounded        bool // Always true for fixed point.
	Exact          bool // Always true for fixed point.
	IntegralBits   uint // Integral bit count, sign bit included.
	FractionalBits uint // Fractional bit count.
}

// Number is the introspection surface every format implements.
type Number interface {
	Traits() Traits
}

// Class is the classification of a fixed point value.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	FP_ZERO   = Class(0) // zero
	FP_NORMAL = Class(1) // normal
)

// Classify reports whether a value is zero or normal. Fixed point values
// are always finite and never NaN, so no other class occurs.
func Classify[T Value](x T) Class {
	if x == 0 {
		return FP_ZERO
	}
	return FP_NORMAL
}

// IsFinite is true for every fixed point value.
func IsFinite[T Value](x T) bool { return true }

// IsInf is false for every fixed point value.
func IsInf[T Value](x T) bool { return false }

// IsNaN is false for every fixed point value.
func IsNaN[T Value](x T) bool { return false }

// IsNormal reports whether x is a nonzero value.
func IsNormal[T Value](x T) bool { return x != 0 }

// Signbit reports whether x is negative. Unsigned formats never are.
func Signbit[T Value](x T) bool { return x < 0 }

// Min returns the smaller of a and b, compared on raw storage.
func Min[T Value](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, compared on raw storage.
func Max[T Value](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns the magnitude of x. For unsigned formats it is the identity.
func Abs[T Value](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Fdim returns max(x-y, 0).
func Fdim[T Value](x, y T) T {
	return Max(x-y, 0)
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[T Value](x, y T) T {
	if Signbit(y) {
		return -Abs(x)
	}
	return Abs(x)
}

var _fixed_defines = map[string]string{
	"Q16_16_EPSILON":     fmt.Sprintf("%v", Q16_16Epsilon.Float64()),
	"Q16_16_MAX":         fmt.Sprintf("%v", Q16_16Max.Float64()),
	"Q16_16_MIN":         fmt.Sprintf("%v", Q16_16Min.Float64()),
	"Q16_16_ROUND_ERROR": fmt.Sprintf("%v", Q16_16RoundError.Float64()),
}

// Defines for the fixed point formats.
func Defines() iter.Seq2[string, string] {
	return maps.All(_fixed_defines)
}
