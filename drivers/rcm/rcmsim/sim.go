// Package rcmsim simulates the RCM register block for host tests.
package rcmsim

import (
	"rcm-go/drivers/rcm"
	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/regblock"
)

// Sim is an in-memory RCM. The sticky status registers are
// write-one-to-clear as on silicon. MR is modelled as a plain register so
// the boot ROM flag reads back what was last written.
type Sim struct {
	*regblock.Memory
}

func New() *Sim {
	return &Sim{Memory: regblock.NewMemory(layout.Size, layout.SSRS0, layout.SSRS1)}
}

// Device returns a driver bound to the simulated block.
func (s *Sim) Device() *rcm.Device { return rcm.New(s) }

// Reset latches a reset event: the live status registers are replaced by
// causes and the sticky registers accumulate them.
func (s *Sim) Reset(causes ...rcm.Source) {
	var srs [2]uint8
	for _, c := range causes {
		srs[c.Bit()>>3] |= layout.BitMask(c.Bit())
	}
	s.Poke(layout.SRS0, srs[0])
	s.Poke(layout.SRS1, srs[1])
	s.Poke(layout.SSRS0, s.Get(layout.SSRS0)|srs[0])
	s.Poke(layout.SSRS1, s.Get(layout.SSRS1)|srs[1])
}

// SetEzPortMode drives the latched EZP_MS flag.
func (s *Sim) SetEzPortMode(asserted bool) {
	layout.PutBool(s.Memory, layout.EZP_MS, asserted)
}

// BootFrom latches the raw MR.BOOTROM value for the last boot.
func (s *Sim) BootFrom(raw uint8) {
	layout.Put(s.Memory, layout.BOOTROM, raw)
}
