// Package regblock provides byte-wide register block backends for
// peripheral drivers: memory-mapped I/O on TinyGo targets, an in-memory
// block for host tests, and a register window reached over I2C.
package regblock

// Block is a byte-addressed register block. Offsets are relative to the
// peripheral base.
//
// Accessors cannot fail. Backends that can (see I2CWindow) latch the first
// error and report it separately.
type Block interface {
	Get(off uintptr) uint8
	Set(off uintptr, v uint8)
}

// SetBits performs a read-modify-write that sets mask in the register at off.
func SetBits(b Block, off uintptr, mask uint8) {
	b.Set(off, b.Get(off)|mask)
}

// ClearBits performs a read-modify-write that clears mask in the register at off.
func ClearBits(b Block, off uintptr, mask uint8) {
	b.Set(off, b.Get(off)&^mask)
}

// HasBits reports whether every bit of mask is set at off.
func HasBits(b Block, off uintptr, mask uint8) bool {
	return b.Get(off)&mask == mask
}
