// Package dump decodes raw RCM register dumps taken from a chip, using the
// chip table to decide which bits are meaningful.
package dump

import (
	"encoding/hex"
	"strings"

	"rcm-go/drivers/rcm"
	"rcm-go/drivers/rcm/layout"
	"rcm-go/drivers/rcm/regblock"
	"rcm-go/errcode"
	"rcm-go/targets"
)

// Decoded is the readable form of one dump.
type Decoded struct {
	Chip   string           `json:"chip"`
	Causes []string         `json:"causes"`
	Sticky []string         `json:"sticky,omitempty"`
	Filter rcm.FilterConfig `json:"filter"`

	ForcedBoot   string `json:"forced_boot,omitempty"`
	ObservedBoot string `json:"observed_boot,omitempty"`
	EzPortMode   *bool  `json:"ezport_mode,omitempty"`

	// Bits set in the status registers that the chip does not define.
	Unexpected []string `json:"unexpected,omitempty"`
}

var bootNames = [...]string{"flash", "rom_bootcfg0", "rom_fopt", "rom_both"}

// Parse reads a hex dump. Bytes may be separated by spaces, commas or
// colons and may carry a 0x prefix.
func Parse(s string) ([]byte, error) {
	f := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == '\n' || r == '\t'
	})
	var b strings.Builder
	for _, tok := range f {
		tok = strings.TrimPrefix(tok, "0x")
		if len(tok)%2 == 1 {
			tok = "0" + tok
		}
		b.WriteString(tok)
	}
	raw, err := hex.DecodeString(b.String())
	if err != nil {
		return nil, errcode.Wrap(errcode.InvalidDump, "dump.parse", err)
	}
	return raw, nil
}

// Decode interprets raw, which holds the RCM block starting at SRS0.
func Decode(chip targets.Chip, raw []byte) (Decoded, error) {
	if len(raw) < layout.Size {
		return Decoded{}, &errcode.E{C: errcode.InvalidDump, Op: "dump.decode", Msg: "short dump"}
	}
	m := regblock.FromBytes(raw[:layout.Size])

	out := Decoded{
		Chip:   chip.Name,
		Causes: causes(chip, m, layout.SRS0),
		Filter: rcm.FilterConfig{
			StopMode: layout.GetBool(m, layout.RSTFLTSS),
			RunWait:  layout.Get[rcm.FilterMode](m, layout.RSTFLTSRW),
			Width:    layout.Get[uint32](m, layout.RSTFLTSEL),
		},
		Unexpected: unexpected(chip, m),
	}
	if out.Causes == nil {
		out.Causes = []string{}
	}
	if chip.Has(layout.FeatureSSRS) {
		out.Sticky = causes(chip, m, layout.SSRS0)
	}
	if chip.Has(layout.FeatureBootROM) {
		out.ForcedBoot = bootNames[layout.Get[uint8](m, layout.FORCEROM)]
		out.ObservedBoot = bootNames[layout.Get[uint8](m, layout.BOOTROM)]
	}
	if chip.Has(layout.FeatureEZPMS) {
		v := layout.GetBool(m, layout.EZP_MS)
		out.EzPortMode = &v
	}
	return out, nil
}

func causes(chip targets.Chip, m regblock.Block, first uintptr) []string {
	var out []string
	for _, s := range layout.StatusBits {
		if !chip.Has(s.Feature) {
			continue
		}
		if m.Get(first+uintptr(s.Code>>3))&s.Mask() != 0 {
			out = append(out, s.Name)
		}
	}
	return out
}

// unexpected names set status bits that are reserved or belong to a
// feature the chip lacks, as "SRS0[4]".
func unexpected(chip targets.Chip, m regblock.Block) []string {
	var out []string
	for i, name := range [...]string{"SRS0", "SRS1"} {
		v := m.Get(layout.SRS0 + uintptr(i))
		for bit := uint8(0); bit < 8; bit++ {
			if v&(1<<bit) == 0 {
				continue
			}
			s, ok := layout.Lookup(uint8(i)*8 + bit)
			if ok && chip.Has(s.Feature) {
				continue
			}
			out = append(out, name+"["+string(rune('0'+bit))+"]")
		}
	}
	return out
}
