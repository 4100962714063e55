//go:build rcm_ssrs || mkl03z4 || mk66f18

package reset

import (
	"reflect"
	"testing"

	"rcm-go/drivers/rcm"
	"rcm-go/drivers/rcm/rcmsim"
)

func TestStickyCapturedBeforeClear(t *testing.T) {
	sim := rcmsim.New()
	sim.Reset(rcm.SourceWatchdog)
	sim.Reset(rcm.SourceSoftware)
	svc, _ := start(t, sim, Config{ClearSticky: true})

	if want := []string{"wdog", "sw"}; !reflect.DeepEqual(svc.Report().Sticky, want) {
		t.Fatalf("Sticky = %v, want %v", svc.Report().Sticky, want)
	}
	if got := sim.Device().StickyResetCauses(); len(got) != 0 {
		t.Fatalf("latches not cleared: %v", got)
	}
}

func TestRuntimeClearRefreshesSticky(t *testing.T) {
	sim := rcmsim.New()
	sim.Reset(rcm.SourceLockup)
	_, conn := start(t, sim, Config{})
	sub := conn.Subscribe(TopicReport)
	if rep := waitReport(t, sub); !reflect.DeepEqual(rep.Sticky, []string{"lockup"}) {
		t.Fatalf("retained Sticky = %v", rep.Sticky)
	}

	conn.Publish(conn.NewMessage(TopicConfig, `{"clear_sticky":true}`, false))
	rep := waitReport(t, sub)
	if len(rep.Sticky) != 0 {
		t.Fatalf("Sticky after clear = %v, want none", rep.Sticky)
	}
	if !reflect.DeepEqual(rep.Causes, []string{"lockup"}) {
		t.Fatalf("Causes = %v", rep.Causes)
	}
}
