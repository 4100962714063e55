//go:build rcm_bootrom || mkl03z4

package rcm

import "rcm-go/drivers/rcm/layout"

const hasBootROM = true

// BootSource says where the core booted from and, for the ROM, why.
type BootSource uint8

const (
	BootFlash   BootSource = iota // boot from flash
	BootROMCfg0                   // boot ROM selected by the BOOTCFG0 pin
	BootROMFopt                   // boot ROM selected by FOPT[7]
	BootROMBoth                   // boot ROM selected by BOOTCFG0 and FOPT[7]
)

func (b BootSource) String() string {
	switch b {
	case BootFlash:
		return "flash"
	case BootROMCfg0:
		return "rom_bootcfg0"
	case BootROMFopt:
		return "rom_fopt"
	case BootROMBoth:
		return "rom_both"
	}
	return "unknown"
}

// SetForcedBootSource selects the boot source for every following reset.
// It does not affect the running image.
func (d *Device) SetForcedBootSource(src BootSource) {
	layout.Put(d.regs, layout.FORCEROM, uint8(src))
}

func (d *Device) ForcedBootSource() BootSource {
	return layout.Get[BootSource](d.regs, layout.FORCEROM)
}

// ObservedBootSource returns the boot source of the most recent boot.
func (d *Device) ObservedBootSource() BootSource {
	return layout.Get[BootSource](d.regs, layout.BOOTROM)
}

// ClearObservedBootSource clears the boot ROM flag by writing BootROMBoth,
// which is also the value it reads back as afterwards.
func (d *Device) ClearObservedBootSource() {
	layout.Put(d.regs, layout.BOOTROM, uint8(BootROMBoth))
}
