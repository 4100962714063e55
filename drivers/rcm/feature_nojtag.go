//go:build !(rcm_jtag || mk64f12 || mk66f18)

package rcm

const hasJTAG = false
