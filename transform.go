package bitarray

//
// Structural transforms: copy, shift, rotate, interleave, reverse, sort
//

// CopyBits copies n bits from src starting at srcStart into b starting at
// dstStart. The source region must be in range. The destination grows to
// dstStart+n if needed. src may be b itself and the regions may overlap.
func (b *BitArray) CopyBits(dstStart uint64, src *BitArray, srcStart, n uint64) {
	src.checkRegion(srcStart, n)
	if n == 0 {
		return
	}
	b.EnsureSize(dstStart + n)
	if b == src && dstStart == srcStart {
		return
	}
	full, rem := n>>wordShift, n&wordMask
	if b != src || dstStart < srcStart {
		// forward: reads stay ahead of writes
		for i := uint64(0); i < full; i++ {
			b.putBits(dstStart+i*wordSize, wordSize, src.word64(srcStart+i*wordSize))
		}
		if rem != 0 {
			b.putBits(dstStart+full*wordSize, rem, src.getBits(srcStart+full*wordSize, rem))
		}
	} else {
		// backward: writes stay ahead of reads
		if rem != 0 {
			b.putBits(dstStart+full*wordSize, rem, src.getBits(srcStart+full*wordSize, rem))
		}
		for i := full; i > 0; i-- {
			b.putBits(dstStart+(i-1)*wordSize, wordSize, src.word64(srcStart+(i-1)*wordSize))
		}
	}
}

// ShiftLeft moves every bit dist positions toward higher indices within the
// current length. Vacated low bits take fill; bits shifted past the end are
// discarded.
func (b *BitArray) ShiftLeft(dist uint64, fill bool) {
	if dist == 0 || b.length == 0 {
		return
	}
	if dist >= b.length {
		b.fillAll(fill)
		return
	}
	b.CopyBits(dist, b, 0, b.length-dist)
	b.fillRegion(0, dist, fill)
}

// ShiftRight moves every bit dist positions toward lower indices within the
// current length. Vacated high bits take fill; bits shifted past bit 0 are
// discarded.
func (b *BitArray) ShiftRight(dist uint64, fill bool) {
	if dist == 0 || b.length == 0 {
		return
	}
	if dist >= b.length {
		b.fillAll(fill)
		return
	}
	b.CopyBits(0, b, dist, b.length-dist)
	b.fillRegion(b.length-dist, dist, fill)
}

func (b *BitArray) fillAll(fill bool) {
	if fill {
		b.SetAll()
	} else {
		b.ClearAll()
	}
}

func (b *BitArray) fillRegion(start, n uint64, fill bool) {
	if fill {
		b.SetRegion(start, n)
	} else {
		b.ClearRegion(start, n)
	}
}

// CycleRight rotates toward lower indices with wraparound: bit i takes the
// old value of bit (i+dist) mod length. dist is taken modulo the length.
func (b *BitArray) CycleRight(dist uint64) {
	if b.length == 0 {
		return
	}
	dist %= b.length
	if dist == 0 {
		return
	}
	b.ReverseRegion(0, dist)
	b.ReverseRegion(dist, b.length-dist)
	b.Reverse()
}

// CycleLeft rotates toward higher indices with wraparound.
func (b *BitArray) CycleLeft(dist uint64) {
	if b.length == 0 {
		return
	}
	dist %= b.length
	if dist == 0 {
		return
	}
	b.CycleRight(b.length - dist)
}

// Interleave stores the bitwise interleaving of a and b into dst: result
// bit 2k is a[k], bit 2k+1 is b[k]. a and b must have equal length and dst
// must be a different array from both.
func (dst *BitArray) Interleave(a, b *BitArray) {
	if a.length != b.length {
		panic("bit array length mismatch")
	}
	if dst == a || dst == b {
		panic("bit array interleave destination aliases a source")
	}
	dst.Resize(2 * a.length)
	for k := uint64(0); k < a.length; k++ {
		dst.Assign(2*k, a.Get(k))
		dst.Assign(2*k+1, b.Get(k))
	}
}

// Reverse reverses the bit order in place. It is its own inverse.
func (b *BitArray) Reverse() {
	b.ReverseRegion(0, b.length)
}

// ReverseRegion reverses the bit order of [start, start+n) in place.
func (b *BitArray) ReverseRegion(start, n uint64) {
	b.checkRegion(start, n)
	if n < 2 {
		return
	}
	for i, j := start, start+n-1; i < j; i, j = i+1, j-1 {
		bi, bj := b.Get(i), b.Get(j)
		b.Assign(i, bj)
		b.Assign(j, bi)
	}
}

// SortBits partitions the bits into a run of 0s followed by a run of 1s,
// by counting the set bits and refilling.
func (b *BitArray) SortBits() {
	k := b.OnesCount()
	b.ClearAll()
	b.modifyRegion(b.length-k, k, regSet)
}

// SortBitsReverse partitions the bits into a run of 1s followed by a run
// of 0s.
func (b *BitArray) SortBitsReverse() {
	k := b.OnesCount()
	b.ClearAll()
	b.modifyRegion(0, k, regSet)
}
