// Package targets describes the RCM capabilities of each supported chip.
// Host tools use it to interpret register dumps from any part, independent
// of the build tags the firmware was compiled with.
package targets

import (
	_ "embed"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"rcm-go/drivers/rcm/layout"
	"rcm-go/errcode"
	"rcm-go/x/logx"
)

//go:embed targets.yaml
var rawChips []byte

var chips Chips

// Chip is one entry of the chip table.
type Chip struct {
	Name     string   `yaml:"name" json:"name"`
	Series   string   `yaml:"series" json:"series"`
	Base     uint32   `yaml:"base" json:"base"`
	Features []string `yaml:"features" json:"features"`
}

// Has reports whether the chip implements the named feature. The empty name
// stands for the baseline every chip implements.
func (c Chip) Has(feature string) bool {
	return feature == "" || slices.Contains(c.Features, feature)
}

type Chips []Chip

func All() Chips { return chips }

// Find looks a chip up by name, ignoring case.
func (cs Chips) Find(name string) (Chip, error) {
	name = strings.ToLower(name)
	i := slices.IndexFunc(cs, func(c Chip) bool { return c.Name == name })
	if i < 0 {
		logx.For(logx.ComponentTargets).Debug("unknown chip", "name", name, "known", len(cs))
		return Chip{}, &errcode.E{C: errcode.UnknownChip, Op: "targets.find", Msg: name}
	}
	return cs[i], nil
}

// Find looks name up in the embedded table.
func Find(name string) (Chip, error) { return chips.Find(name) }

var knownFeatures = []string{
	layout.FeatureLOC, layout.FeatureLOL, layout.FeatureJTAG, layout.FeatureEzPort,
	layout.FeatureSSRS, layout.FeatureBootROM, layout.FeatureEZPMS,
}

// Load parses a chip table and checks every feature name and chip name.
func Load(raw []byte) (Chips, error) {
	var t struct {
		Chips Chips `yaml:"chips"`
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "targets.load", err)
	}
	seen := map[string]bool{}
	for i := range t.Chips {
		c := &t.Chips[i]
		c.Name = strings.ToLower(c.Name)
		if c.Name == "" || seen[c.Name] {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "targets.load", Msg: "missing or duplicate chip name " + c.Name}
		}
		seen[c.Name] = true
		for _, f := range c.Features {
			if !slices.Contains(knownFeatures, f) {
				return nil, &errcode.E{C: errcode.InvalidParams, Op: "targets.load", Msg: c.Name + ": unknown feature " + f}
			}
		}
		// Both fields live in MR bit 1.
		if c.Has(layout.FeatureBootROM) && c.Has(layout.FeatureEZPMS) {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "targets.load", Msg: c.Name + ": bootrom and ezpms overlap in MR"}
		}
	}
	return t.Chips, nil
}

func init() {
	var err error
	if chips, err = Load(rawChips); err != nil {
		panic(err)
	}
}
