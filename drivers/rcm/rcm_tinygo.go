//go:build tinygo

package rcm

import (
	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/regblock"
)

// Open returns a driver for the RCM mapped at base.
func Open(base uintptr) *Device {
	return New(regblock.NewMMIO(base))
}

// OpenDefault returns a driver for the RCM at its standard Kinetis address.
func OpenDefault() *Device {
	return Open(layout.DefaultBase)
}
