//go:build rcm_lol || mkl25z4 || mk64f12 || mk66f18

package rcm

import "rcm-go/drivers/rcm/layout"

// SourceLossOfLock is a reset caused by the PLL losing lock.
var SourceLossOfLock = Source{layout.BitLOL}

const hasLOL = true
