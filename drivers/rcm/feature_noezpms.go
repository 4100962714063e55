//go:build !(rcm_ezpms || mk64f12 || mk66f18)

package rcm

const hasEZPMS = false
