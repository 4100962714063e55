//go:build (rcm_bootrom || mkl03z4) && (rcm_ezpms || mk64f12 || mk66f18)

package rcm

// MR bit 1 is EZP_MS on parts with EzPort and the low bit of BOOTROM on
// parts with a boot ROM. No part has both, so a build selecting both is
// rejected here.
var _ = bootROMAndEzPortModeCannotBeCombined
