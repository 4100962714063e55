package rcm

import "rcm-go/drivers/rcm/layout"

// Features lists the optional RCM capabilities compiled into the build.
type Features struct {
	LossOfClock bool `json:"loc"`
	LossOfLock  bool `json:"lol"`
	JTAG        bool `json:"jtag"`
	EzPort      bool `json:"ezport"`
	Sticky      bool `json:"ssrs"`
	BootROM     bool `json:"bootrom"`
	EzPortMode  bool `json:"ezpms"`
}

// Supported describes this build.
var Supported = Features{
	LossOfClock: hasLOC,
	LossOfLock:  hasLOL,
	JTAG:        hasJTAG,
	EzPort:      hasEzPort,
	Sticky:      hasSSRS,
	BootROM:     hasBootROM,
	EzPortMode:  hasEZPMS,
}

// Has reports whether the named feature is present. The empty name stands
// for the baseline and is always present.
func (f Features) Has(name string) bool {
	switch name {
	case "":
		return true
	case layout.FeatureLOC:
		return f.LossOfClock
	case layout.FeatureLOL:
		return f.LossOfLock
	case layout.FeatureJTAG:
		return f.JTAG
	case layout.FeatureEzPort:
		return f.EzPort
	case layout.FeatureSSRS:
		return f.Sticky
	case layout.FeatureBootROM:
		return f.BootROM
	case layout.FeatureEZPMS:
		return f.EzPortMode
	}
	return false
}

// Names returns the present features using the chip table's names.
func (f Features) Names() []string {
	var out []string
	for _, n := range []string{
		layout.FeatureLOC, layout.FeatureLOL, layout.FeatureJTAG, layout.FeatureEzPort,
		layout.FeatureSSRS, layout.FeatureBootROM, layout.FeatureEZPMS,
	} {
		if f.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
