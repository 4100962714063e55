//go:build tinygo

package regblock

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is a memory-mapped register block at a fixed base address.
type MMIO struct {
	base uintptr
}

func NewMMIO(base uintptr) MMIO { return MMIO{base: base} }

func (m MMIO) reg(off uintptr) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(m.base + off))
}

func (m MMIO) Get(off uintptr) uint8    { return m.reg(off).Get() }
func (m MMIO) Set(off uintptr, v uint8) { m.reg(off).Set(v) }
