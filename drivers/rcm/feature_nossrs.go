//go:build !(rcm_ssrs || mkl03z4 || mk66f18)

package rcm

const hasSSRS = false
