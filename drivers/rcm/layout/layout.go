// Package layout provides register offsets, bit positions and field
// descriptors for the Kinetis Reset Control Module (RCM).
//
// The table is the union over supported parts. Which entries a given chip
// implements is decided elsewhere: by build tags in package rcm and by the
// chip table in package targets.
package layout

// Base address of RCM on every supported Kinetis part.
const DefaultBase = 0x4007F000

// Register offsets (8-bit registers).
const (
	SRS0  = 0x00 // R   system reset status 0
	SRS1  = 0x01 // R   system reset status 1
	RPFC  = 0x04 // R/W reset pin filter control
	RPFW  = 0x05 // R/W reset pin filter width
	FM    = 0x06 // R/W force mode
	MR    = 0x07 // R/W1C mode
	SSRS0 = 0x08 // R/W1C sticky system reset status 0
	SSRS1 = 0x09 // R/W1C sticky system reset status 1

	// Size of the block in bytes.
	Size = 0x0A
)

// Status bit codes. A code is the bit index across SRS0:SRS1, so bits 0-7
// live in SRS0 and 8-15 in SRS1. The same positions are used by SSRS0:SSRS1.
const (
	BitWakeup  = 0
	BitLVD     = 1
	BitLOC     = 2
	BitLOL     = 3
	BitWDOG    = 5
	BitPIN     = 6
	BitPOR     = 7
	BitJTAG    = 8
	BitLOCKUP  = 9
	BitSW      = 10
	BitMDMAP   = 11
	BitEZPT    = 12
	BitSACKERR = 13
)

// Feature names, matching the capability list in the chip table.
const (
	FeatureLOC     = "loc"
	FeatureLOL     = "lol"
	FeatureJTAG    = "jtag"
	FeatureEzPort  = "ezport"
	FeatureSSRS    = "ssrs"
	FeatureBootROM = "bootrom"
	FeatureEZPMS   = "ezpms"
)

// StatusBit describes one reset cause.
type StatusBit struct {
	Code    uint8
	Name    string
	Feature string // empty when present on every part
}

// Offset returns the live status register holding the bit.
func (s StatusBit) Offset() uintptr { return StatusOffset(s.Code) }

// StickyOffset returns the sticky latch register holding the bit.
func (s StatusBit) StickyOffset() uintptr { return StickyOffset(s.Code) }

// Mask returns the bit within its register.
func (s StatusBit) Mask() uint8 { return BitMask(s.Code) }

// StatusBits lists every reset cause in register order.
var StatusBits = [...]StatusBit{
	{BitWakeup, "wakeup", ""},
	{BitLVD, "lvd", ""},
	{BitLOC, "loc", FeatureLOC},
	{BitLOL, "lol", FeatureLOL},
	{BitWDOG, "wdog", ""},
	{BitPIN, "pin", ""},
	{BitPOR, "por", ""},
	{BitJTAG, "jtag", FeatureJTAG},
	{BitLOCKUP, "lockup", ""},
	{BitSW, "sw", ""},
	{BitMDMAP, "mdm_ap", ""},
	{BitEZPT, "ezport", FeatureEzPort},
	{BitSACKERR, "sackerr", ""},
}

// Lookup returns the status bit with the given code.
func Lookup(code uint8) (StatusBit, bool) {
	for _, s := range StatusBits {
		if s.Code == code {
			return s, true
		}
	}
	return StatusBit{}, false
}

func StatusOffset(code uint8) uintptr { return SRS0 + uintptr(code>>3) }
func StickyOffset(code uint8) uintptr { return SSRS0 + uintptr(code>>3) }
func BitMask(code uint8) uint8        { return 1 << (code & 7) }

// Field descriptors.
var (
	RSTFLTSRW = Field{Offset: RPFC, Shift: 0, Width: 2} // run/wait filter select
	RSTFLTSS  = Field{Offset: RPFC, Shift: 2, Width: 1} // stop mode filter enable
	RSTFLTSEL = Field{Offset: RPFW, Shift: 0, Width: 5} // filter width (count-1)
	FORCEROM  = Field{Offset: FM, Shift: 1, Width: 2}
	EZP_MS    = Field{Offset: MR, Shift: 1, Width: 1} // parts with EzPort
	BOOTROM   = Field{Offset: MR, Shift: 1, Width: 2} // parts with boot ROM
)
