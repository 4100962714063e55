//go:build !(rcm_bootrom || mkl03z4)

package rcm

const hasBootROM = false
