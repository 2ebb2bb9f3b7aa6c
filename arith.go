package bitarray

//
// Unsigned arithmetic, bit 0 least significant
//

import (
	"errors"
	"math/bits"
)

var (
	// ErrValueTooBig reports a value that does not fit in a machine word.
	ErrValueTooBig = errors.New("bit array value exceeds machine word range")
	// ErrUnderflow reports a subtraction larger than the stored value.
	ErrUnderflow = errors.New("bit array subtract underflow")
)

// AsUint64 returns the array's numeric value. Fails with ErrValueTooBig if
// any bit at index 64 or above is set; Sum, Difference and Product are the
// arbitrary-precision path.
func (b *BitArray) AsUint64() (uint64, error) {
	for i := 1; i < len(b.words); i++ {
		if b.words[i] != 0 {
			return 0, ErrValueTooBig
		}
	}
	return wordAt(b, 0), nil
}

// addCarry ripples v into the word at index wi, appending words when the
// carry spills past the allocated end. The caller fixes the length up
// afterwards via growToBits.
func (b *BitArray) addCarry(wi uint64, v uint64) {
	for v != 0 {
		if wi >= uint64(len(b.words)) {
			b.words = append(b.words, 0)
		}
		b.words[wi], v = bits.Add64(b.words[wi], v, 0)
		wi++
	}
}

// growToBits extends the logical length to cover the highest set bit and
// trims surplus zero words, restoring words == ceil(length/64).
func (b *BitArray) growToBits() {
	for i := len(b.words) - 1; i >= 0; i-- {
		if b.words[i] != 0 {
			hi := uint64(i)*wordSize + uint64(bits.Len64(b.words[i]))
			if hi > b.length {
				b.length = hi
			}
			break
		}
	}
	b.words = b.words[:wordsFor(b.length)]
}

// Add adds a machine-word value, growing the array if the carry propagates
// past the current length.
func (b *BitArray) Add(v uint64) {
	b.AddAt(0, v)
}

// AddAt adds v << pos, i.e. a ripple-carry add of v starting at bit pos.
// pos may exceed the current length; the array grows to fit the result.
func (b *BitArray) AddAt(pos uint64, v uint64) {
	if v == 0 {
		return
	}
	wi := pos >> wordShift
	off := pos & wordMask
	for uint64(len(b.words)) <= wi {
		b.words = append(b.words, 0)
	}
	b.addCarry(wi, v<<off)
	if off != 0 {
		if hi := v >> (wordSize - off); hi != 0 {
			b.addCarry(wi+1, hi)
		}
	}
	b.growToBits()
}

// AddShifted adds src << shift, growing the array to fit. src may be the
// array itself.
func (b *BitArray) AddShifted(src *BitArray, shift uint64) {
	if src == b {
		src = b.Clone()
	}
	for i, w := range src.words {
		if w != 0 {
			b.AddAt(shift+uint64(i)*wordSize, w)
		}
	}
}

// Subtract subtracts a machine-word value. If v exceeds the stored value
// the array is left unchanged and ErrUnderflow is returned.
func (b *BitArray) Subtract(v uint64) error {
	if v == 0 {
		return nil
	}
	if b.CmpUint64(v) < 0 {
		return ErrUnderflow
	}
	var borrow uint64
	b.words[0], borrow = bits.Sub64(b.words[0], v, 0)
	for i := 1; borrow != 0; i++ {
		b.words[i], borrow = bits.Sub64(b.words[i], 0, borrow)
	}
	return nil
}

// Mul multiplies by a machine-word value, growing the array as needed.
func (b *BitArray) Mul(v uint64) {
	switch v {
	case 0:
		b.ClearAll()
		return
	case 1:
		return
	}
	src := b.Clone()
	b.ClearAll()
	for i, w := range src.words {
		if w == 0 {
			continue
		}
		hi, lo := bits.Mul64(w, v)
		b.AddAt(uint64(i)*wordSize, lo)
		if hi != 0 {
			b.AddAt(uint64(i+1)*wordSize, hi)
		}
	}
}

// Sum stores a + b into dst. dst takes the longer source length, plus one
// bit when the addition carries out. dst may alias either source.
func (dst *BitArray) Sum(a, b *BitArray) {
	n := a.length
	if b.length > n {
		n = b.length
	}
	dst.Resize(n)
	var carry uint64
	for i := range dst.words {
		dst.words[i], carry = bits.Add64(wordAt(a, i), wordAt(b, i), carry)
	}
	if carry != 0 {
		dst.words = append(dst.words, carry)
	}
	dst.length = n
	dst.growToBits()
}

// Difference stores a - b into dst. a must compare >= b; violating that is
// a precondition failure and panics before any mutation. dst takes a's
// length and may alias either source.
func (dst *BitArray) Difference(a, b *BitArray) {
	if a.Cmp(b) < 0 {
		panic("bit array difference underflow")
	}
	var borrow uint64
	dst.Resize(a.length)
	for i := range dst.words {
		dst.words[i], borrow = bits.Sub64(wordAt(a, i), wordAt(b, i), borrow)
	}
	dst.mask()
}

// Product stores a * b into dst. All three must be distinct arrays; the
// cross-term accumulation cannot read a buffer it is writing. dst takes
// length len(a) + len(b).
func (dst *BitArray) Product(a, b *BitArray) {
	if dst == a || dst == b || a == b {
		panic("bit array product arguments must be distinct")
	}
	dst.Resize(a.length + b.length)
	dst.ClearAll()
	for i, x := range a.words {
		if x == 0 {
			continue
		}
		for j, y := range b.words {
			if y == 0 {
				continue
			}
			hi, lo := bits.Mul64(x, y)
			dst.addCarry(uint64(i+j), lo)
			if hi != 0 {
				dst.addCarry(uint64(i+j+1), hi)
			}
		}
	}
	dst.mask()
}
