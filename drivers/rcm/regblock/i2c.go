package regblock

import (
	"tinygo.org/x/drivers"

	"rcm-go/errcode"
)

// I2CWindow is a register block exposed by another device over I2C, such
// as a supervisor MCU mirroring the target's reset registers. Each register
// is one byte at sub-address Base+off.
type I2CWindow struct {
	bus  drivers.I2C
	addr uint16
	base uint8
	err  error

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

// NewI2CWindow returns a window onto the device at addr whose register
// block starts at sub-address base.
func NewI2CWindow(bus drivers.I2C, addr uint16, base uint8) *I2CWindow {
	return &I2CWindow{bus: bus, addr: addr, base: base}
}

// Err returns the first transfer error seen since the last ResetErr, as an
// errcode.BusError wrapping the driver's error.
func (w *I2CWindow) Err() error { return w.err }

// ResetErr clears the latched error.
func (w *I2CWindow) ResetErr() { w.err = nil }

// Get reads one register. After a failed transfer it returns 0.
func (w *I2CWindow) Get(off uintptr) uint8 {
	w.w[0] = w.base + uint8(off)
	if err := w.bus.Tx(w.addr, w.w[:1], w.r[:1]); err != nil {
		w.latch(err)
		return 0
	}
	return w.r[0]
}

func (w *I2CWindow) Set(off uintptr, v uint8) {
	w.w[0] = w.base + uint8(off)
	w.w[1] = v
	if err := w.bus.Tx(w.addr, w.w[:2], nil); err != nil {
		w.latch(err)
	}
}

func (w *I2CWindow) latch(err error) {
	if w.err == nil {
		w.err = errcode.Wrap(errcode.BusError, "regblock.i2c", err)
	}
}
