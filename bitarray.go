package bitarray

//
// Word-packed resizable bit array
//

const (
	wordSize  = 64
	wordShift = 6
	wordMask  = wordSize - 1
)

// BitArray is a resizable sequence of bits packed into 64-bit words.
// Bit i lives in words[i/64] at offset i%64, least significant bit first,
// so bit 0 of the array is bit 0 of word 0. Bits at or beyond Len() in the
// last word are always zero; whole-word scans (popcount, compare, hash)
// rely on that.
//
// A BitArray is not safe for concurrent mutation.
type BitArray struct {
	length uint64
	words  []uint64
}

// New returns a zeroed bit array of the given length.
func New(nbits uint64) *BitArray {
	return &BitArray{
		length: nbits,
		words:  make([]uint64, wordsFor(nbits)),
	}
}

func wordsFor(nbits uint64) uint64 {
	return (nbits + wordMask) >> wordShift
}

// lowMask returns a mask of the n lowest bits.
func lowMask(n uint64) uint64 {
	if n >= wordSize {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// Len returns the number of valid bits.
func (b *BitArray) Len() uint64 {
	return b.length
}

// Resize changes the logical length. Growing zero-fills the new bits,
// shrinking re-zeroes the freed tail bits. The word slice is extended
// before the length changes, so bits below min(old, new) survive.
func (b *BitArray) Resize(nbits uint64) {
	nw := wordsFor(nbits)
	switch {
	case nw > uint64(len(b.words)):
		if nw <= uint64(cap(b.words)) {
			old := len(b.words)
			b.words = b.words[:nw]
			for i := old; i < int(nw); i++ {
				b.words[i] = 0
			}
		} else {
			words := make([]uint64, nw)
			copy(words, b.words)
			b.words = words
		}
	case nw < uint64(len(b.words)):
		b.words = b.words[:nw]
	}
	b.length = nbits
	b.mask()
}

// EnsureSize resizes only if the array is shorter than nbits.
func (b *BitArray) EnsureSize(nbits uint64) {
	if b.length < nbits {
		b.Resize(nbits)
	}
}

// Clone returns an independent copy.
func (b *BitArray) Clone() *BitArray {
	c := &BitArray{
		length: b.length,
		words:  make([]uint64, len(b.words)),
	}
	copy(c.words, b.words)
	return c
}

// Words returns a borrowed read-only view of the packed words. Callers must
// not modify it; writing through it would break the tail invariant. Pair
// with Len for the number of valid bits.
func (b *BitArray) Words() []uint64 {
	return b.words
}

// mask zeroes the bits at or beyond length in the last word.
func (b *BitArray) mask() {
	if r := b.length & wordMask; r != 0 {
		b.words[len(b.words)-1] &= lowMask(r)
	}
}

func (b *BitArray) checkIndex(i uint64) {
	if i >= b.length {
		panic("bit array index out of bounds")
	}
}

func (b *BitArray) checkRegion(start, n uint64) {
	if start+n > b.length {
		panic("bit array region out of bounds")
	}
}

// word64 reads 64 bits starting at bit start, combining up to two words.
// Bits past the end of the word slice read as zero.
func (b *BitArray) word64(start uint64) uint64 {
	wi := start >> wordShift
	off := start & wordMask
	if wi >= uint64(len(b.words)) {
		return 0
	}
	w := b.words[wi] >> off
	if off != 0 && wi+1 < uint64(len(b.words)) {
		w |= b.words[wi+1] << (wordSize - off)
	}
	return w
}

// getBits reads the n (<= 64) bits starting at bit start.
func (b *BitArray) getBits(start, n uint64) uint64 {
	return b.word64(start) & lowMask(n)
}

// putBits writes the low n (<= 64) bits of v starting at bit start. Bits
// that would land beyond the valid length are dropped.
func (b *BitArray) putBits(start, n, v uint64) {
	if n == 0 || start >= b.length {
		return
	}
	v &= lowMask(n)
	wi := start >> wordShift
	off := start & wordMask
	m := lowMask(n) << off
	b.words[wi] = (b.words[wi] &^ m) | (v << off)
	if off+n > wordSize && wi+1 < uint64(len(b.words)) {
		hm := lowMask(off + n - wordSize)
		b.words[wi+1] = (b.words[wi+1] &^ hm) | (v >> (wordSize - off))
	}
	b.mask()
}

func wordAt(b *BitArray, i int) uint64 {
	if i < len(b.words) {
		return b.words[i]
	}
	return 0
}
