//go:build !(rcm_bootrom || mkl03z4)

package reset

import "rcm-go/drivers/rcm"

func captureBoot(*rcm.Device, *Report) {}

func clearBoot(*rcm.Device) {}
