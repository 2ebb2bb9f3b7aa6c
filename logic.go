package bitarray

//
// Boolean algebra and comparison
//

// prepare resizes dst for a binary operation over a and b: the result
// length is the longer of the two, the shorter operand zero-extends.
// dst may alias either source.
func (dst *BitArray) prepare(a, b *BitArray) {
	n := a.length
	if b.length > n {
		n = b.length
	}
	dst.Resize(n)
}

// And stores a AND b into dst.
func (dst *BitArray) And(a, b *BitArray) {
	dst.prepare(a, b)
	for i := range dst.words {
		dst.words[i] = wordAt(a, i) & wordAt(b, i)
	}
}

// Or stores a OR b into dst.
func (dst *BitArray) Or(a, b *BitArray) {
	dst.prepare(a, b)
	for i := range dst.words {
		dst.words[i] = wordAt(a, i) | wordAt(b, i)
	}
}

// Xor stores a XOR b into dst.
func (dst *BitArray) Xor(a, b *BitArray) {
	dst.prepare(a, b)
	for i := range dst.words {
		dst.words[i] = wordAt(a, i) ^ wordAt(b, i)
	}
}

// Not stores the complement of src into dst. dst takes src's length and
// may alias src.
func (dst *BitArray) Not(src *BitArray) {
	dst.Resize(src.length)
	for i := range dst.words {
		dst.words[i] = ^src.words[i]
	}
	dst.mask()
}

// ComplementRegion flips all bits in [start, start+n).
func (b *BitArray) ComplementRegion(start, n uint64) {
	b.ToggleRegion(start, n)
}

// Cmp compares two arrays as unsigned integers with bit 0 the least
// significant. Lengths may differ; the shorter operand zero-extends.
// Returns 1, 0 or -1.
func (b *BitArray) Cmp(other *BitArray) int {
	nw := len(b.words)
	if len(other.words) > nw {
		nw = len(other.words)
	}
	for i := nw - 1; i >= 0; i-- {
		x, y := wordAt(b, i), wordAt(other, i)
		if x != y {
			if x > y {
				return 1
			}
			return -1
		}
	}
	return 0
}

// LexCmp compares two arrays with bit 0 the most significant, i.e.
// lexicographically from bit 0 upward. The shorter operand is zero-padded
// at its tail. Equality coincides with Cmp equality; relative order
// generally differs.
func (b *BitArray) LexCmp(other *BitArray) int {
	nw := len(b.words)
	if len(other.words) > nw {
		nw = len(other.words)
	}
	for i := 0; i < nw; i++ {
		x, y := wordAt(b, i), wordAt(other, i)
		if x != y {
			// the lowest differing bit is the most significant one
			d := x ^ y
			if x&(d&-d) != 0 {
				return 1
			}
			return -1
		}
	}
	return 0
}

// CmpUint64 compares the array's numeric value against a machine word.
func (b *BitArray) CmpUint64(v uint64) int {
	for i := 1; i < len(b.words); i++ {
		if b.words[i] != 0 {
			return 1
		}
	}
	w := wordAt(b, 0)
	switch {
	case w > v:
		return 1
	case w < v:
		return -1
	}
	return 0
}
