package layout

import (
	"golang.org/x/exp/constraints"

	"rcm-go/drivers/rcm/regblock"
)

// Field is a bit-field within one 8-bit register.
type Field struct {
	Offset uintptr
	Shift  uint8
	Width  uint8
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint8 { return uint8(1<<f.Width - 1) }

// Mask returns the field's bits in register position.
func (f Field) Mask() uint8 { return f.Max() << f.Shift }

// Extract pulls the field out of a raw register value.
func (f Field) Extract(reg uint8) uint8 { return (reg & f.Mask()) >> f.Shift }

// Insert replaces the field in a raw register value. v is truncated to the
// field width.
func (f Field) Insert(reg, v uint8) uint8 {
	return reg&^f.Mask() | (v&f.Max())<<f.Shift
}

// Get reads f from b.
func Get[T constraints.Unsigned](b regblock.Block, f Field) T {
	return T(f.Extract(b.Get(f.Offset)))
}

// Put writes v into f with a read-modify-write of the containing register.
// Bits of v above the field width are dropped, so the stored value is
// v mod 2^Width.
func Put[T constraints.Unsigned](b regblock.Block, f Field, v T) {
	narrowed := uint8(uint64(v) & uint64(f.Max()))
	b.Set(f.Offset, f.Insert(b.Get(f.Offset), narrowed))
}

// GetBool reads a one-bit field.
func GetBool(b regblock.Block, f Field) bool { return Get[uint8](b, f) != 0 }

// PutBool writes a one-bit field.
func PutBool(b regblock.Block, f Field, v bool) {
	var x uint8
	if v {
		x = 1
	}
	Put(b, f, x)
}
