//go:build !(rcm_loc || mkl25z4 || mk64f12 || mk66f18)

package rcm

const hasLOC = false
