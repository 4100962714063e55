//go:build rcm_ezpms || mk64f12 || mk66f18

package reset

import "rcm-go/drivers/rcm"

func captureEzPort(d *rcm.Device, r *Report) {
	v := d.EzPortModeAsserted()
	r.EzPortMode = &v
}
