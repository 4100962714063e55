//go:build rcm_ezport || mk64f12 || mk66f18

package rcm

import "rcm-go/drivers/rcm/layout"

// SourceEzPort is a reset requested over the EzPort interface.
var SourceEzPort = Source{layout.BitEZPT}

const hasEzPort = true
