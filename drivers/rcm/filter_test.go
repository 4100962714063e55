package rcm_test

import (
	"encoding/json"
	"testing"

	"rcm-go/drivers/rcm"
	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/rcmsim"
)

func TestRunWaitFilterModeRoundTrip(t *testing.T) {
	d := rcmsim.New().Device()
	for _, m := range []rcm.FilterMode{rcm.FilterDisabled, rcm.FilterBusClock, rcm.FilterLPOClock, rcm.FilterReserved} {
		d.SetRunWaitFilterMode(m)
		if got := d.RunWaitFilterMode(); got != m {
			t.Fatalf("RunWaitFilterMode = %s, want %s", got, m)
		}
	}
}

func TestFilterWidthRoundTripAndTruncation(t *testing.T) {
	d := rcmsim.New().Device()
	for w := uint32(0); w < 100; w++ {
		d.SetFilterWidth(w)
		if got, want := d.FilterWidth(), w%32; got != want {
			t.Fatalf("SetFilterWidth(%d): FilterWidth = %d, want %d", w, got, want)
		}
	}
	d.SetFilterWidth(0xFFFFFFFF)
	if got := d.FilterWidth(); got != rcm.MaxFilterWidth {
		t.Fatalf("FilterWidth = %d, want %d", got, rcm.MaxFilterWidth)
	}
}

func TestStopModeFilter(t *testing.T) {
	d := rcmsim.New().Device()
	if d.StopModeFilter() {
		t.Fatal("filter enabled at reset")
	}
	d.SetStopModeFilter(true)
	if !d.StopModeFilter() {
		t.Fatal("SetStopModeFilter(true) not visible")
	}
	d.SetStopModeFilter(false)
	if d.StopModeFilter() {
		t.Fatal("SetStopModeFilter(false) not visible")
	}
}

func TestFilterFieldsAreIndependent(t *testing.T) {
	sim := rcmsim.New()
	d := sim.Device()

	d.SetStopModeFilter(true)
	d.SetRunWaitFilterMode(rcm.FilterReserved)
	d.SetRunWaitFilterMode(rcm.FilterDisabled)
	if !d.StopModeFilter() {
		t.Fatal("mode write cleared the stop mode filter")
	}
	d.SetStopModeFilter(false)
	d.SetRunWaitFilterMode(rcm.FilterBusClock)
	d.SetStopModeFilter(true)
	if d.RunWaitFilterMode() != rcm.FilterBusClock {
		t.Fatal("stop mode write changed the run/wait mode")
	}
	if got := sim.Get(layout.RPFC); got != 0x05 {
		t.Fatalf("RPFC = %#x, want 0x05", got)
	}
}

func TestFilterConfig(t *testing.T) {
	d := rcmsim.New().Device()
	cfg := rcm.FilterConfig{StopMode: true, RunWait: rcm.FilterLPOClock, Width: 17}
	d.ConfigureFilter(cfg)
	if got := d.Filter(); got != cfg {
		t.Fatalf("Filter = %+v, want %+v", got, cfg)
	}
}

func TestFilterConfigJSONUsesModeNames(t *testing.T) {
	b, err := json.Marshal(rcm.FilterConfig{RunWait: rcm.FilterBusClock, Width: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"stop_mode":false,"run_wait":"bus_clock","width":3}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}

	var cfg rcm.FilterConfig
	if err := json.Unmarshal([]byte(`{"run_wait":"lpo_clock"}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.RunWait != rcm.FilterLPOClock {
		t.Fatalf("RunWait = %s", cfg.RunWait)
	}
	if err := json.Unmarshal([]byte(`{"run_wait":"fast"}`), &cfg); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
