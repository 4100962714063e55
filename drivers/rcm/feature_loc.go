//go:build rcm_loc || mkl25z4 || mk64f12 || mk66f18

package rcm

import "rcm-go/drivers/rcm/layout"

// SourceLossOfClock is a reset caused by the clock monitor.
var SourceLossOfClock = Source{layout.BitLOC}

const hasLOC = true
