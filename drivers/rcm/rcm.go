// Package rcm provides a driver for the Kinetis Reset Control Module.
//
// The RCM records the cause of the most recent reset and configures the
// external reset pin filter. Depending on the part it also keeps sticky
// copies of the reset causes, reports the EzPort mode-select pin, and can
// force the next boot to run from the boot ROM.
//
// Optional capabilities are selected by build tags, either per feature
// (rcm_loc, rcm_lol, rcm_jtag, rcm_ezport, rcm_ssrs, rcm_bootrom, rcm_ezpms)
// or per chip (mkl03z4, mkl25z4, mk64f12, mk66f18). Sources and methods for
// capabilities the build does not select are not declared.
//
// The driver holds no state besides the register block. Every getter reads
// the hardware. Field writes are read-modify-write sequences and are not
// atomic; callers sharing a Device between goroutines or interrupt handlers
// must serialize access themselves.
package rcm

import (
	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/regblock"
)

type Device struct {
	regs regblock.Block
}

// New returns a driver over regs. On hardware regs is the memory-mapped
// block at the RCM base address (see Open); tests pass an in-memory block.
func New(regs regblock.Block) *Device {
	return &Device{regs: regs}
}

// SourceStatus reports whether src caused the most recent reset. It panics
// if src is not a cause this build supports.
func (d *Device) SourceStatus(src Source) bool {
	src.mustSupport()
	return regblock.HasBits(d.regs, layout.StatusOffset(src.bit), layout.BitMask(src.bit))
}

// ResetCauses returns every supported source flagged in the live status
// registers, in register order.
func (d *Device) ResetCauses() []Source {
	return d.collect(layout.SRS0)
}

func (d *Device) collect(first uintptr) []Source {
	// Read each register once so the result is a consistent snapshot.
	raw := [2]uint8{d.regs.Get(first), d.regs.Get(first + 1)}
	var out []Source
	for _, s := range Sources() {
		if raw[s.bit>>3]&layout.BitMask(s.bit) != 0 {
			out = append(out, s)
		}
	}
	return out
}
