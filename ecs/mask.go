package ecs

import "math/bits"

// Mask is a fixed-width bitmask where each bit marks one registered
// component type. A world can therefore register at most MaxComponentTypes
// component types.
type Mask uint64

// MaxComponentTypes is the hard cap on registered component types per
// world, set by the width of Mask.
const MaxComponentTypes = 64

// Set returns the mask with the given bit set.
func (m Mask) Set(bit uint) Mask {
	return m | 1<<bit
}

// Clear returns the mask with the given bit cleared.
func (m Mask) Clear(bit uint) Mask {
	return m &^ (1 << bit)
}

// Has reports whether the given bit is set.
func (m Mask) Has(bit uint) bool {
	return m&(1<<bit) != 0
}

// HasAll reports whether every bit set in query is also set in m.
func (m Mask) HasAll(query Mask) bool {
	return m&query == query
}

// Bits calls fn for each set bit, lowest first.
func (m Mask) Bits(fn func(bit uint)) {
	w := uint64(m)
	for w != 0 {
		bit := uint(bits.TrailingZeros64(w))
		fn(bit)
		w &^= 1 << bit
	}
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}
