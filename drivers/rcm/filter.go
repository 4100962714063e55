package rcm

import (
	"rcm-go/drivers/rcm/layout"
	"rcm-go/errcode"
)

// FilterMode selects the reset pin filter clock in run and wait modes.
type FilterMode uint8

const (
	FilterDisabled FilterMode = iota
	FilterBusClock
	FilterLPOClock
	FilterReserved // reserved encoding; valid to read back
)

func (m FilterMode) String() string {
	switch m {
	case FilterDisabled:
		return "disabled"
	case FilterBusClock:
		return "bus_clock"
	case FilterLPOClock:
		return "lpo_clock"
	case FilterReserved:
		return "reserved"
	}
	return "unknown"
}

// ParseFilterMode is the inverse of FilterMode.String.
func ParseFilterMode(s string) (FilterMode, bool) {
	for m := FilterDisabled; m <= FilterReserved; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

func (m FilterMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *FilterMode) UnmarshalText(b []byte) error {
	v, ok := ParseFilterMode(string(b))
	if !ok {
		return errcode.InvalidParams
	}
	*m = v
	return nil
}

// MaxFilterWidth is the largest value the width field holds. The filter
// counts MaxFilterWidth+1 clocks at most.
const MaxFilterWidth = 31

// SetStopModeFilter enables the LPO filter on the reset pin in stop modes.
func (d *Device) SetStopModeFilter(enable bool) {
	layout.PutBool(d.regs, layout.RSTFLTSS, enable)
}

func (d *Device) StopModeFilter() bool {
	return layout.GetBool(d.regs, layout.RSTFLTSS)
}

func (d *Device) SetRunWaitFilterMode(mode FilterMode) {
	layout.Put(d.regs, layout.RSTFLTSRW, uint8(mode))
}

func (d *Device) RunWaitFilterMode() FilterMode {
	return layout.Get[FilterMode](d.regs, layout.RSTFLTSRW)
}

// SetFilterWidth sets the filter width. There is no range check: the
// hardware keeps the low five bits, so width is stored as width mod 32.
func (d *Device) SetFilterWidth(width uint32) {
	layout.Put(d.regs, layout.RSTFLTSEL, width)
}

func (d *Device) FilterWidth() uint32 {
	return layout.Get[uint32](d.regs, layout.RSTFLTSEL)
}

// FilterConfig is the complete reset pin filter setting.
type FilterConfig struct {
	StopMode bool       `json:"stop_mode"`
	RunWait  FilterMode `json:"run_wait"`
	Width    uint32     `json:"width"`
}

// Filter reads all filter fields.
func (d *Device) Filter() FilterConfig {
	return FilterConfig{
		StopMode: d.StopModeFilter(),
		RunWait:  d.RunWaitFilterMode(),
		Width:    d.FilterWidth(),
	}
}

// ConfigureFilter writes all filter fields.
func (d *Device) ConfigureFilter(cfg FilterConfig) {
	d.SetRunWaitFilterMode(cfg.RunWait)
	d.SetStopModeFilter(cfg.StopMode)
	d.SetFilterWidth(cfg.Width)
}
