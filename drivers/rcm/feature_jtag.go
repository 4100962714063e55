//go:build rcm_jtag || mk64f12 || mk66f18

package rcm

import "rcm-go/drivers/rcm/layout"

var SourceJTAG = Source{layout.BitJTAG}

const hasJTAG = true
