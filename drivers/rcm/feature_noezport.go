//go:build !(rcm_ezport || mk64f12 || mk66f18)

package rcm

const hasEzPort = false
