package bitarray

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// Hash returns a seeded 64-bit hash of the logical content: the bit length
// followed by the packed valid bytes. Pass seed 0 on the first call and
// the previous hash value when rehashing after a collision. Capacity never
// feeds the hash, so equal content hashes equal.
func (b *BitArray) Hash(seed uint64) uint64 {
	data := b.bytes()
	buf := make([]byte, 8+len(data))
	binary.LittleEndian.PutUint64(buf[:8], b.length)
	copy(buf[8:], data)
	return murmur3.SeedSum64(seed, buf)
}
