//go:build tinygo

// Supervisor firmware that reads a target's RCM through an I2C register
// bridge and reports why the target last reset. Build it with the chip tag
// of the target part, not of the supervisor.
package main

import (
	"machine"
	"time"

	"rcm-go/drivers/rcm"
	"rcm-go/drivers/rcm/regblock"
)

const (
	bridgeAddr = 0x42 // bridge device on I2C0
	bridgeBase = 0x00 // sub-address of SRS0
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		println("i2c configure:", err.Error())
		return
	}

	win := regblock.NewI2CWindow(i2c, bridgeAddr, bridgeBase)
	dev := rcm.New(win)

	for {
		causes := dev.ResetCauses()
		if err := win.Err(); err != nil {
			println("bridge:", err.Error())
			win.ResetErr()
		} else {
			print("target reset causes:")
			for _, src := range causes {
				print(" ", src.String())
			}
			println()
		}
		time.Sleep(10 * time.Second)
	}
}
