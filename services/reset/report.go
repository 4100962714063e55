package reset

import "rcm-go/drivers/rcm"

// Report describes the most recent reset and the RCM configuration.
// Causes, boot source and EzPort mode are read once when the service starts.
// Filter and Sticky are re-read after every config update, so a runtime
// clear_sticky shows up as an empty Sticky list.
type Report struct {
	Causes []string         `json:"causes"`
	Sticky []string         `json:"sticky,omitempty"`
	Filter rcm.FilterConfig `json:"filter"`

	ForcedBoot   string `json:"forced_boot,omitempty"`
	ObservedBoot string `json:"observed_boot,omitempty"`
	EzPortMode   *bool  `json:"ezport_mode,omitempty"`

	Features rcm.Features `json:"features"`
}

// Capture reads a Report from d. It has no side effects on the hardware.
func Capture(d *rcm.Device) Report {
	r := Report{
		Causes:   names(d.ResetCauses()),
		Filter:   d.Filter(),
		Features: rcm.Supported,
	}
	captureSticky(d, &r)
	captureBoot(d, &r)
	captureEzPort(d, &r)
	return r
}

// Has reports whether name is among the live causes.
func (r Report) Has(name string) bool {
	for _, c := range r.Causes {
		if c == name {
			return true
		}
	}
	return false
}

func names(srcs []rcm.Source) []string {
	out := make([]string, len(srcs))
	for i, s := range srcs {
		out[i] = s.String()
	}
	return out
}
