//go:build rcm_ssrs || mkl03z4 || mk66f18

package rcm

import (
	"testing"

	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/regblock"
)

func TestStickyStatusRejectsReservedBits(t *testing.T) {
	regs := regblock.NewMemory(layout.Size)
	regs.Poke(layout.SSRS0, 0xFF)
	d := New(regs)
	expectPanic(t, "StickySourceStatus(bit 4)", func() { d.StickySourceStatus(Source{bit: 4}) })
	if !d.StickySourceStatus(SourcePowerOn) {
		t.Fatal("power-on latch not reported")
	}
}
