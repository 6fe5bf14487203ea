// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>
//
// Package hwreg wraps a single hardware register cell in a type that
// grants only the accesses the hardware allows. The capability lives in
// the method set: R has Read, W has Write, and RW has both plus the
// read-modify-write helpers. Writing a read-only register is a compile
// error, not a runtime fault.
//
// The zero value of each wrapper is an embedded register, usable
// directly as a field of a register block:
//
//	type Uart struct {
//		Status hwreg.R[uint8]
//		Data   hwreg.RW[uint8]
//		Ctrl   hwreg.W[uint8]
//	}
//
// A register at a fixed memory address has no storage of its own; every
// access dereferences the address:
//
//	status := hwreg.RAt[uint8](0x4000_0000)
//	data := hwreg.RWAt[uint8](0x4000_0004)
//
// Wrappers must not be copied; go vet flags copies via the embedded
// no-copy guard. Go has no volatile qualifier, so accesses are plain
// loads and stores through a pointer. On targets where the register has
// read or write side effects, pair this package with the runtime's
// volatile access primitives.
package hwreg
