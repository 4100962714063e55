//go:build rcm_ezpms || mk64f12 || mk66f18

package rcm

import "rcm-go/drivers/rcm/layout"

const hasEZPMS = true

// EzPortModeAsserted reports whether EZP_CS was asserted at the last reset,
// selecting EzPort mode.
func (d *Device) EzPortModeAsserted() bool {
	return layout.GetBool(d.regs, layout.EZP_MS)
}
