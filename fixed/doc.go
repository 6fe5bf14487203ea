// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package fixed provides fixed point number formats backed by native integer
// storage, as a drop-in for floating point where floating point is not wanted.
//
// Each format is a defined integer type named for its integral.fractional bit
// split: Q16_16 is a signed value with 16 integral and 16 fractional bits in
// an int32, UQ8_8 an unsigned 8.8 value in a uint16. Addition, subtraction,
// comparison and equality are the native Go operators on the defined type;
// they act on raw storage, which is exact for a fixed scale. Mixing formats
// in a native expression does not compile, and neither does calling an
// operation a format does not support.
//
// One gap in that contract cannot be closed: Go defines *, / and % on every
// integer type, and on these formats they act on raw cells with no rescale
// and no widening. A native product of two Q16_16 values overflows the int32
// cell silently. Mul and Div are the only correct spellings of multiplication
// and division; never use the native operators for them.
//
// Multiplication uses the widening protocol. Multiplying two Q16_16 values
// yields a W32_32: raw storage is the next larger native integer, the bit
// split doubles, and no product bit is lost. Sums of widened values stay
// widened, so multiply-accumulate chains keep full precision until a final
// Narrow:
//
//	acc := a.Mul(b) + c.Mul(d) // W32_32
//	out := acc.Narrow()        // Q16_16
//
// Two widened values never multiply directly into a widened result; Mul on a
// widened format narrows both operands first, matching hardware that cannot
// produce a quad width product. Formats whose raw storage is already 64 bits
// wide (Q32_32, UQ32_32) have no widened companion at all, so Mul, Div and
// Fma do not exist on them and a call does not compile.
//
// Two behaviors are deliberate and pinned by tests: Int floors
// toward negative infinity (an arithmetic right shift of the raw cell, not a
// round toward zero), and Trunc masks the fractional bits, which for negative
// values spanning a fractional boundary also lands toward negative infinity.
package fixed
