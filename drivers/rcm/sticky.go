//go:build rcm_ssrs || mkl03z4 || mk66f18

package rcm

import "rcm-go/drivers/rcm/layout"

const hasSSRS = true

// StickySourceStatus reports whether src has caused a reset since the
// sticky latches were last cleared. Like SourceStatus it panics if src is
// not a cause this build supports.
func (d *Device) StickySourceStatus(src Source) bool {
	src.mustSupport()
	return d.regs.Get(layout.StickyOffset(src.bit))&layout.BitMask(src.bit) != 0
}

// StickyResetCauses returns every supported source set in the sticky
// latches, in register order.
func (d *Device) StickyResetCauses() []Source {
	return d.collect(layout.SSRS0)
}

// ClearStickySourceStatus clears every sticky latch. The hardware has no
// per-source clear. The latches are write-one-to-clear, so writing back
// the current value clears exactly the bits that are set.
func (d *Device) ClearStickySourceStatus() {
	d.regs.Set(layout.SSRS0, d.regs.Get(layout.SSRS0))
	d.regs.Set(layout.SSRS1, d.regs.Get(layout.SSRS1))
}
