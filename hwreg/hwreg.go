package hwreg

import (
	"unsafe"
)

// Value is the set of types a hardware register can hold.
type Value interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// noCopy triggers the go vet copylocks check when a wrapper is copied
// by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// cell is the shared storage strategy. With p unset the cell is its own
// storage; with p set every access goes through the fixed address.
type cell[T Value] struct {
	noCopy noCopy
	v      T
	p      *T
}

func (c *cell[T]) ptr() *T {
	if c.p != nil {
		return c.p
	}
	return &c.v
}

// Addr exposes the underlying storage regardless of capability.
func (c *cell[T]) Addr() *T { return c.ptr() }

// R is a read-only register.
type R[T Value] struct {
	cell[T]
}

// RAt aliases a read-only register at a fixed address.
func RAt[T Value](addr uintptr) *R[T] {
	return &R[T]{cell: cell[T]{p: (*T)(unsafe.Pointer(addr))}}
}

func (r *R[T]) Read() T { return *r.ptr() }

// W is a write-only register.
type W[T Value] struct {
	cell[T]
}

// WAt aliases a write-only register at a fixed address.
func WAt[T Value](addr uintptr) *W[T] {
	return &W[T]{cell: cell[T]{p: (*T)(unsafe.Pointer(addr))}}
}

func (w *W[T]) Write(v T) { *w.ptr() = v }

// RW is a read-write register. Only RW carries the read-modify-write
// helpers, since they need both capabilities.
type RW[T Value] struct {
	cell[T]
}

// RWAt aliases a read-write register at a fixed address.
func RWAt[T Value](addr uintptr) *RW[T] {
	return &RW[T]{cell: cell[T]{p: (*T)(unsafe.Pointer(addr))}}
}

func (rw *RW[T]) Read() T    { return *rw.ptr() }
func (rw *RW[T]) Write(v T)  { *rw.ptr() = v }
func (rw *RW[T]) Add(v T)    { *rw.ptr() += v }
func (rw *RW[T]) Sub(v T)    { *rw.ptr() -= v }
func (rw *RW[T]) Mul(v T)    { *rw.ptr() *= v }
func (rw *RW[T]) Div(v T)    { *rw.ptr() /= v }
func (rw *RW[T]) Mod(v T)    { *rw.ptr() %= v }
func (rw *RW[T]) Xor(v T)    { *rw.ptr() ^= v }
func (rw *RW[T]) And(v T)    { *rw.ptr() &= v }
func (rw *RW[T]) Or(v T)     { *rw.ptr() |= v }
func (rw *RW[T]) Shl(n uint) { *rw.ptr() <<= n }
func (rw *RW[T]) Shr(n uint) { *rw.ptr() >>= n }
