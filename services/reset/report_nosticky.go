//go:build !(rcm_ssrs || mkl03z4 || mk66f18)

package reset

import "rcm-go/drivers/rcm"

func captureSticky(*rcm.Device, *Report) {}

func clearSticky(*rcm.Device) {}
