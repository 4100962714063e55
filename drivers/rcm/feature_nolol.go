//go:build !(rcm_lol || mkl25z4 || mk64f12 || mk66f18)

package rcm

const hasLOL = false
