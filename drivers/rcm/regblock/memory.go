package regblock

import "golang.org/x/exp/slices"

// Memory is an in-memory register block. Offsets listed as
// write-one-to-clear behave like hardware status latches: a Set clears the
// bits written as 1 and leaves the rest alone.
type Memory struct {
	regs []uint8
	w1c  []uintptr
}

// NewMemory returns a zeroed block of size bytes.
func NewMemory(size int, w1c ...uintptr) *Memory {
	return &Memory{
		regs: make([]uint8, size),
		w1c:  slices.Clone(w1c),
	}
}

// FromBytes returns a block initialised from a register dump.
func FromBytes(raw []byte, w1c ...uintptr) *Memory {
	m := NewMemory(len(raw), w1c...)
	copy(m.regs, raw)
	return m
}

func (m *Memory) Len() int { return len(m.regs) }

func (m *Memory) Get(off uintptr) uint8 {
	m.check(off)
	return m.regs[off]
}

func (m *Memory) Set(off uintptr, v uint8) {
	m.check(off)
	if slices.Contains(m.w1c, off) {
		m.regs[off] &^= v
		return
	}
	m.regs[off] = v
}

// Poke stores v at off regardless of write-one-to-clear semantics.
// It stands in for the hardware side latching a value.
func (m *Memory) Poke(off uintptr, v uint8) {
	m.check(off)
	m.regs[off] = v
}

// Bytes returns a copy of the block contents.
func (m *Memory) Bytes() []byte { return slices.Clone(m.regs) }

func (m *Memory) check(off uintptr) {
	if off >= uintptr(len(m.regs)) {
		panic("regblock: offset out of range")
	}
}
