package bitarray

//
// Single-bit, bulk, region and word-level access
//

// Get returns the value of bit i.
func (b *BitArray) Get(i uint64) bool {
	b.checkIndex(i)
	return (b.words[i>>wordShift]>>(i&wordMask))&1 == 1
}

// Set sets bit i to 1.
func (b *BitArray) Set(i uint64) {
	b.checkIndex(i)
	b.words[i>>wordShift] |= 1 << (i & wordMask)
}

// Clear sets bit i to 0.
func (b *BitArray) Clear(i uint64) {
	b.checkIndex(i)
	b.words[i>>wordShift] &^= 1 << (i & wordMask)
}

// Toggle flips bit i.
func (b *BitArray) Toggle(i uint64) {
	b.checkIndex(i)
	b.words[i>>wordShift] ^= 1 << (i & wordMask)
}

// Assign sets bit i to v.
func (b *BitArray) Assign(i uint64, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

// SetBits sets every listed bit. The indices are applied independently,
// in no particular order.
func (b *BitArray) SetBits(idx ...uint64) {
	for _, i := range idx {
		b.Set(i)
	}
}

// ClearBits clears every listed bit.
func (b *BitArray) ClearBits(idx ...uint64) {
	for _, i := range idx {
		b.Clear(i)
	}
}

// ToggleBits flips every listed bit.
func (b *BitArray) ToggleBits(idx ...uint64) {
	for _, i := range idx {
		b.Toggle(i)
	}
}

const (
	regSet = iota
	regClear
	regToggle
)

func (b *BitArray) applyMask(wi, m uint64, op int) {
	switch op {
	case regSet:
		b.words[wi] |= m
	case regClear:
		b.words[wi] &^= m
	case regToggle:
		b.words[wi] ^= m
	}
}

// modifyRegion applies op to [start, start+n), masking the partial first
// and last words so the cost is O(n/64).
func (b *BitArray) modifyRegion(start, n uint64, op int) {
	if n == 0 {
		return
	}
	first := start >> wordShift
	last := (start + n - 1) >> wordShift
	fm := ^lowMask(start & wordMask)
	lm := lowMask(((start + n - 1) & wordMask) + 1)
	if first == last {
		b.applyMask(first, fm&lm, op)
		return
	}
	b.applyMask(first, fm, op)
	for wi := first + 1; wi < last; wi++ {
		b.applyMask(wi, ^uint64(0), op)
	}
	b.applyMask(last, lm, op)
}

// SetRegion sets all bits in [start, start+n).
func (b *BitArray) SetRegion(start, n uint64) {
	b.checkRegion(start, n)
	b.modifyRegion(start, n, regSet)
}

// ClearRegion clears all bits in [start, start+n).
func (b *BitArray) ClearRegion(start, n uint64) {
	b.checkRegion(start, n)
	b.modifyRegion(start, n, regClear)
}

// ToggleRegion flips all bits in [start, start+n).
func (b *BitArray) ToggleRegion(start, n uint64) {
	b.checkRegion(start, n)
	b.modifyRegion(start, n, regToggle)
}

// SetAll sets every bit.
func (b *BitArray) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.mask()
}

// ClearAll clears every bit.
func (b *BitArray) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// ToggleAll flips every bit.
func (b *BitArray) ToggleAll() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.mask()
}

// Word64 reads the 64 bits starting at bit start as a little-endian
// integer, regardless of word alignment. start must be within the array;
// bits past the end read as zero.
func (b *BitArray) Word64(start uint64) uint64 {
	b.checkIndex(start)
	return b.word64(start)
}

// Word32 reads 32 bits starting at bit start.
func (b *BitArray) Word32(start uint64) uint32 {
	b.checkIndex(start)
	return uint32(b.word64(start))
}

// Word16 reads 16 bits starting at bit start.
func (b *BitArray) Word16(start uint64) uint16 {
	b.checkIndex(start)
	return uint16(b.word64(start))
}

// Word8 reads 8 bits starting at bit start.
func (b *BitArray) Word8(start uint64) uint8 {
	b.checkIndex(start)
	return uint8(b.word64(start))
}

// SetWord64 writes 64 bits starting at bit start. start must be within the
// array; bits that would land past the end are dropped.
func (b *BitArray) SetWord64(start uint64, w uint64) {
	b.checkIndex(start)
	b.putBits(start, wordSize, w)
}

// SetWord32 writes 32 bits starting at bit start.
func (b *BitArray) SetWord32(start uint64, w uint32) {
	b.checkIndex(start)
	b.putBits(start, 32, uint64(w))
}

// SetWord16 writes 16 bits starting at bit start.
func (b *BitArray) SetWord16(start uint64, w uint16) {
	b.checkIndex(start)
	b.putBits(start, 16, uint64(w))
}

// SetWord8 writes 8 bits starting at bit start.
func (b *BitArray) SetWord8(start uint64, w uint8) {
	b.checkIndex(start)
	b.putBits(start, 8, uint64(w))
}
