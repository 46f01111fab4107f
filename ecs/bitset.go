package ecs

import "math/bits"

const bitsetWordBits = 64

// Bitset is a growable bitset keyed by entity id, stored in 64-bit words.
// The zero value is an empty set ready for use. Bits past the last word
// are implicitly zero, so Clear and Test never allocate.
type Bitset struct {
	words []uint64
}

// Set sets bit i, growing the word array if needed.
func (b *Bitset) Set(i uint32) {
	w := int(i / bitsetWordBits)
	for len(b.words) <= w {
		b.words = append(b.words, 0)
	}
	b.words[w] |= 1 << (i % bitsetWordBits)
}

// Clear clears bit i.
func (b *Bitset) Clear(i uint32) {
	w := int(i / bitsetWordBits)
	if w < len(b.words) {
		b.words[w] &^= 1 << (i % bitsetWordBits)
	}
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i uint32) bool {
	w := int(i / bitsetWordBits)
	return w < len(b.words) && b.words[w]&(1<<(i%bitsetWordBits)) != 0
}

// Population returns the number of set bits.
func (b *Bitset) Population() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// NextSet returns the index of the first set bit at or after i.
// The second result is false when no such bit exists.
func (b *Bitset) NextSet(i uint32) (uint32, bool) {
	w := int(i / bitsetWordBits)
	if w >= len(b.words) {
		return 0, false
	}
	if word := b.words[w] >> (i % bitsetWordBits); word != 0 {
		return i + uint32(bits.TrailingZeros64(word)), true
	}
	for w++; w < len(b.words); w++ {
		if b.words[w] != 0 {
			return uint32(w*bitsetWordBits + bits.TrailingZeros64(b.words[w])), true
		}
	}
	return 0, false
}

// ForEach walks set bits in increasing order. The callback returns true to
// continue iteration, false to stop.
func (b *Bitset) ForEach(fn func(uint32) bool) {
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if !fn(i) {
			return
		}
	}
}

// Reset clears every bit, keeping the allocation.
func (b *Bitset) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}
