package layout

import (
	"testing"

	"rcm-go/drivers/rcm/regblock"
)

func TestStatusBitsOrderedAndUnique(t *testing.T) {
	seen := map[uint8]bool{}
	names := map[string]bool{}
	for i, s := range StatusBits {
		if seen[s.Code] {
			t.Fatalf("duplicate code %d", s.Code)
		}
		if names[s.Name] {
			t.Fatalf("duplicate name %q", s.Name)
		}
		seen[s.Code], names[s.Name] = true, true
		if i > 0 && StatusBits[i-1].Code >= s.Code {
			t.Fatalf("codes out of order at %q", s.Name)
		}
	}
}

func TestStatusBitAddressing(t *testing.T) {
	cases := []struct {
		code   uint8
		off    uintptr
		sticky uintptr
		mask   uint8
	}{
		{BitWakeup, SRS0, SSRS0, 0x01},
		{BitPOR, SRS0, SSRS0, 0x80},
		{BitJTAG, SRS1, SSRS1, 0x01},
		{BitSACKERR, SRS1, SSRS1, 0x20},
	}
	for _, c := range cases {
		s, ok := Lookup(c.code)
		if !ok {
			t.Fatalf("Lookup(%d) failed", c.code)
		}
		if s.Offset() != c.off || s.StickyOffset() != c.sticky || s.Mask() != c.mask {
			t.Fatalf("%s: got off=%#x sticky=%#x mask=%#x", s.Name, s.Offset(), s.StickyOffset(), s.Mask())
		}
	}
	if _, ok := Lookup(4); ok {
		t.Fatal("bit 4 of SRS0 is reserved and must not resolve")
	}
}

func TestFieldPutTruncatesAndPreservesNeighbours(t *testing.T) {
	m := regblock.NewMemory(Size)

	PutBool(m, RSTFLTSS, true)
	Put(m, RSTFLTSRW, uint8(2))
	if got := m.Get(RPFC); got != 0x06 {
		t.Fatalf("RPFC = %#x, want 0x06", got)
	}

	Put(m, RSTFLTSRW, uint8(7)) // 7 mod 4 = 3
	if got := Get[uint8](m, RSTFLTSRW); got != 3 {
		t.Fatalf("RSTFLTSRW = %d, want 3", got)
	}
	if !GetBool(m, RSTFLTSS) {
		t.Fatal("writing RSTFLTSRW clobbered RSTFLTSS")
	}

	Put(m, RSTFLTSEL, uint32(33))
	if got := Get[uint32](m, RSTFLTSEL); got != 1 {
		t.Fatalf("RSTFLTSEL = %d, want 33 mod 32", got)
	}
}

func TestFieldMasks(t *testing.T) {
	if FORCEROM.Mask() != 0x06 || BOOTROM.Mask() != 0x06 || EZP_MS.Mask() != 0x02 {
		t.Fatalf("unexpected masks: %#x %#x %#x", FORCEROM.Mask(), BOOTROM.Mask(), EZP_MS.Mask())
	}
	if RSTFLTSEL.Max() != 31 {
		t.Fatalf("RSTFLTSEL.Max = %d", RSTFLTSEL.Max())
	}
}

func TestBootROMAndEzPortModeShareMR(t *testing.T) {
	if EZP_MS.Offset != BOOTROM.Offset || EZP_MS.Mask()&BOOTROM.Mask() == 0 {
		t.Fatal("EZP_MS and BOOTROM are expected to overlap in MR")
	}
	regs := regblock.NewMemory(Size)
	Put(regs, BOOTROM, uint8(1))
	if !GetBool(regs, EZP_MS) {
		t.Fatal("BOOTROM low bit should read back through EZP_MS")
	}
}
