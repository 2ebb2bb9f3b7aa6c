package bitarray

//
// Binary persistence: [8 bytes little-endian bit count][ceil(bits/8) bytes]
//

import (
	"encoding/binary"
	"io"
)

// bytes packs the valid bits into ceil(length/8) bytes, low byte first.
// The tail invariant zero-pads the final byte.
func (b *BitArray) bytes() []byte {
	out := make([]byte, (b.length+7)/8)
	for i := range out {
		out[i] = byte(b.words[i>>3] >> ((i & 7) * 8))
	}
	return out
}

// Save writes the array to w and returns the number of bytes written.
func (b *BitArray) Save(w io.Writer) (int, error) {
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], b.length)
	n, err := w.Write(hdr[:])
	if err != nil {
		return n, err
	}
	dn, err := w.Write(b.bytes())
	return n + dn, err
}

// loadChunk bounds how many payload bytes Load stages per read, so a
// corrupt header cannot force a giant allocation before the stream runs dry.
const loadChunk = 1 << 20

// Load replaces the array's content from r. On a short or failed read the
// array is left as it was and the error is returned.
func (b *BitArray) Load(r io.Reader) error {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return err
	}
	nbits := binary.LittleEndian.Uint64(hdr[:])
	need := nbits / 8
	if nbits%8 != 0 {
		need++
	}
	var data []byte
	for uint64(len(data)) < need {
		n := need - uint64(len(data))
		if n > loadChunk {
			n = loadChunk
		}
		off := len(data)
		data = append(data, make([]byte, n)...)
		if _, err := io.ReadFull(r, data[off:]); err != nil {
			return err
		}
	}
	b.Resize(nbits)
	b.ClearAll()
	for i, c := range data {
		b.words[i>>3] |= uint64(c) << ((i & 7) * 8)
	}
	b.mask()
	return nil
}
