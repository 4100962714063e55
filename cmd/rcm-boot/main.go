//go:build tinygo

// Firmware that reports the cause of the last reset on the console and
// publishes it for other services on the in-process bus.
package main

import (
	"context"
	"time"

	"rcm-go/bus"
	"rcm-go/drivers/rcm"
	"rcm-go/services/reset"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	dev := rcm.OpenDefault()
	for _, src := range dev.ResetCauses() {
		println("reset cause:", src.String())
	}

	b := bus.NewBus(4)
	conn := b.NewConnection("rcm-boot")
	svc := reset.New(dev, reset.Config{
		ClearSticky: true,
		Filter:      &rcm.FilterConfig{RunWait: rcm.FilterBusClock, Width: 7},
	})
	if err := svc.Start(context.Background(), conn); err != nil {
		println("reset service:", err.Error())
	}

	tick := time.NewTicker(10 * time.Second)
	defer tick.Stop()
	for range tick.C {
		println("alive; last reset:", len(svc.Report().Causes), "cause(s)")
	}
}
