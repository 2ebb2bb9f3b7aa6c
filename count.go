package bitarray

//
// Derived scalars: popcount, parity, set-bit search, permutation stepping
//

import "math/bits"

// OnesCount returns the number of set bits. The tail invariant keeps the
// per-word popcount honest in the last word.
func (b *BitArray) OnesCount() uint64 {
	var n uint64
	for _, w := range b.words {
		n += uint64(bits.OnesCount64(w))
	}
	return n
}

// ZerosCount returns the number of clear bits.
func (b *BitArray) ZerosCount() uint64 {
	return b.length - b.OnesCount()
}

// HammingDistance returns the number of positions at which the two arrays
// differ. Lengths may differ; the shorter operand zero-extends.
func (b *BitArray) HammingDistance(other *BitArray) uint64 {
	nw := len(b.words)
	if len(other.words) > nw {
		nw = len(other.words)
	}
	var n uint64
	for i := 0; i < nw; i++ {
		n += uint64(bits.OnesCount64(wordAt(b, i) ^ wordAt(other, i)))
	}
	return n
}

// Parity reports whether an odd number of bits is set.
func (b *BitArray) Parity() bool {
	return b.OnesCount()&1 == 1
}

// FirstSetBit returns the index of the lowest set bit. The index is only
// meaningful when the second result is true.
func (b *BitArray) FirstSetBit() (uint64, bool) {
	for i, w := range b.words {
		if w != 0 {
			return uint64(i)*wordSize + uint64(bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

// LastSetBit returns the index of the highest set bit. The index is only
// meaningful when the second result is true.
func (b *BitArray) LastSetBit() (uint64, bool) {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return uint64(i)*wordSize + uint64(bits.Len64(w)) - 1, true
		}
	}
	return 0, false
}

// firstZeroFrom returns the index of the first clear bit at or above from,
// or the length if the run of ones reaches the end.
func (b *BitArray) firstZeroFrom(from uint64) uint64 {
	off := from & wordMask
	for wi := from >> wordShift; wi < uint64(len(b.words)); wi++ {
		if inv := ^b.words[wi] &^ lowMask(off); inv != 0 {
			idx := wi*wordSize + uint64(bits.TrailingZeros64(inv))
			if idx > b.length {
				idx = b.length
			}
			return idx
		}
		off = 0
	}
	return b.length
}

// NextPermutation advances to the next arrangement of the same length and
// popcount in increasing numeric order (bit 0 least significant): the run
// of ones at the lowest set bit carries into the next clear bit and the
// remainder of the run drops to the bottom. After the maximal arrangement
// (all ones at the top) it wraps to the minimal one (all ones at the
// bottom).
func (b *BitArray) NextPermutation() {
	f, ok := b.FirstSetBit()
	if !ok {
		return
	}
	z := b.firstZeroFrom(f)
	run := z - f
	b.modifyRegion(f, run, regClear)
	if z == b.length {
		// wraparound
		b.modifyRegion(0, run, regSet)
		return
	}
	b.Set(z)
	b.modifyRegion(0, run-1, regSet)
}
