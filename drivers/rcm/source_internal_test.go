package rcm

import (
	"testing"

	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/regblock"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s did not panic", name)
		}
	}()
	fn()
}

func TestStatusRejectsUndeclaredSources(t *testing.T) {
	regs := regblock.NewMemory(layout.Size)
	regs.Poke(layout.SRS0, 0xFF)
	regs.Poke(layout.SRS1, 0xFF)
	d := New(regs)

	bad := []Source{{bit: 4}, {bit: 14}, {bit: 15}}
	for _, b := range layout.StatusBits {
		if !Supported.Has(b.Feature) {
			bad = append(bad, Source{bit: b.Code})
		}
	}
	for _, src := range bad {
		expectPanic(t, "SourceStatus("+src.String()+")", func() { d.SourceStatus(src) })
	}
	for _, src := range Sources() {
		if !d.SourceStatus(src) {
			t.Fatalf("SourceStatus(%s) = false with every bit set", src)
		}
	}
}
