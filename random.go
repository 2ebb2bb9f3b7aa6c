package bitarray

import "math/rand"

// Random sets each bit independently with probability prob. prob <= 0
// clears every bit and prob >= 1 sets every bit.
func (b *BitArray) Random(prob float64) {
	switch {
	case prob <= 0:
		b.ClearAll()
		return
	case prob >= 1:
		b.SetAll()
		return
	}
	for i := range b.words {
		var w uint64
		for bit := 0; bit < wordSize; bit++ {
			if rand.Float64() < prob {
				w |= 1 << bit
			}
		}
		b.words[i] = w
	}
	b.mask()
}

// Shuffle permutes the bit positions uniformly in place (Fisher-Yates over
// bit indices). The popcount is preserved.
func (b *BitArray) Shuffle() {
	for i := b.length; i > 1; i-- {
		j := uint64(rand.Int63n(int64(i)))
		bi, bj := b.Get(i-1), b.Get(j)
		b.Assign(i-1, bj)
		b.Assign(j, bi)
	}
}
