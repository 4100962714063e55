//go:build rcm_bootrom || mkl03z4

package reset

import (
	"testing"

	"rcm-go/drivers/rcm"
	"rcm-go/drivers/rcm/rcmsim"
)

func TestBootCapturedBeforeClear(t *testing.T) {
	sim := rcmsim.New()
	sim.BootFrom(uint8(rcm.BootROMCfg0))
	svc, _ := start(t, sim, Config{ClearBootROM: true})

	if got := svc.Report().ObservedBoot; got != "rom_bootcfg0" {
		t.Fatalf("ObservedBoot = %q", got)
	}
	if got := sim.Device().ObservedBootSource(); got != rcm.BootROMBoth {
		t.Fatalf("after clear ObservedBootSource = %s, want rom_both", got)
	}
}
