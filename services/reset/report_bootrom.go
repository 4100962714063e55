//go:build rcm_bootrom || mkl03z4

package reset

import "rcm-go/drivers/rcm"

func captureBoot(d *rcm.Device, r *Report) {
	r.ForcedBoot = d.ForcedBootSource().String()
	r.ObservedBoot = d.ObservedBootSource().String()
}

func clearBoot(d *rcm.Device) {
	d.ClearObservedBootSource()
}
