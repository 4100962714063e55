//go:build !(rcm_ezpms || mk64f12 || mk66f18)

package reset

import "rcm-go/drivers/rcm"

func captureEzPort(*rcm.Device, *Report) {}
