//go:build rcm_ssrs || mkl03z4 || mk66f18

package reset

import "rcm-go/drivers/rcm"

func captureSticky(d *rcm.Device, r *Report) {
	r.Sticky = names(d.StickyResetCauses())
}

func clearSticky(d *rcm.Device) {
	d.ClearStickySourceStatus()
}
