package bitarray

//
// Textual encodings: bit strings, hex, JSON
//

import (
	"errors"

	gojson "github.com/goccy/go-json"
)

// ErrBadChar reports a character outside the expected on/off or hex set.
var ErrBadChar = errors.New("bit array string contains an invalid character")

// String renders the array as '0'/'1' characters with bit 0 first.
func (b *BitArray) String() string {
	s := make([]byte, b.length)
	for i := uint64(0); i < b.length; i++ {
		if b.Get(i) {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}

// FromStr replaces the array's content with the bits of a '0'/'1' string,
// bit 0 first. Any other character fails with ErrBadChar before mutating.
func (b *BitArray) FromStr(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return ErrBadChar
		}
	}
	b.Resize(uint64(len(s)))
	b.ClearAll()
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			b.Set(uint64(i))
		}
	}
	return nil
}

// Substring renders [start, start+n) with caller-chosen characters.
// leftToRight maps bit start to the first character; otherwise the highest
// index comes first, which reads naturally as a number.
func (b *BitArray) Substring(start, n uint64, on, off byte, leftToRight bool) string {
	b.checkRegion(start, n)
	s := make([]byte, n)
	for k := uint64(0); k < n; k++ {
		pos := k
		if !leftToRight {
			pos = n - 1 - k
		}
		c := off
		if b.Get(start + pos) {
			c = on
		}
		s[k] = c
	}
	return string(s)
}

// FromSubstring assigns the bits of s starting at offset, growing the
// array to offset+len(s) if needed. Characters outside the on/off pair
// fail with ErrBadChar before mutating.
func (b *BitArray) FromSubstring(offset uint64, s string, on, off byte, leftToRight bool) error {
	for i := 0; i < len(s); i++ {
		if s[i] != on && s[i] != off {
			return ErrBadChar
		}
	}
	n := uint64(len(s))
	b.EnsureSize(offset + n)
	for k := uint64(0); k < n; k++ {
		pos := k
		if !leftToRight {
			pos = n - 1 - k
		}
		b.Assign(offset+pos, s[k] == on)
	}
	return nil
}

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// ToHex renders [start, start+n) as hex, 4 bits per character with bit
// start the least significant bit of the first character. A partial final
// nibble is zero-padded.
func (b *BitArray) ToHex(start, n uint64, uppercase bool) string {
	b.checkRegion(start, n)
	digits := hexLower
	if uppercase {
		digits = hexUpper
	}
	s := make([]byte, 0, (n+3)/4)
	for k := uint64(0); k < n; k += 4 {
		w := n - k
		if w > 4 {
			w = 4
		}
		s = append(s, digits[b.getBits(start+k, w)])
	}
	return string(s)
}

func hexVal(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// FromHex writes the bits of a hex string starting at offset, 4 bits per
// character ascending, growing the array if needed. Returns the number of
// bits loaded: 4*len(s) rounded up to a multiple of 8, the pad bits zero.
// Non-hex characters fail with ErrBadChar before mutating.
func (b *BitArray) FromHex(offset uint64, s string) (uint64, error) {
	for i := 0; i < len(s); i++ {
		if _, ok := hexVal(s[i]); !ok {
			return 0, ErrBadChar
		}
	}
	nbits := uint64(len(s)) * 4
	loaded := (nbits + 7) &^ 7
	b.EnsureSize(offset + loaded)
	for i := 0; i < len(s); i++ {
		v, _ := hexVal(s[i])
		b.putBits(offset+uint64(i)*4, 4, v)
	}
	if loaded > nbits {
		b.ClearRegion(offset+nbits, loaded-nbits)
	}
	return loaded, nil
}

// ErrBadFormat reports malformed serialized input.
var ErrBadFormat = errors.New("bit array encoded data is malformed")

type bitArrayJSON struct {
	Length uint64 `json:"length"`
	Hex    string `json:"hex"`
}

// MarshalJSON encodes the array as {"length": N, "hex": "..."}.
func (b *BitArray) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(bitArrayJSON{
		Length: b.length,
		Hex:    b.ToHex(0, b.length, false),
	})
}

// UnmarshalJSON decodes the MarshalJSON form. The explicit length field
// restores lengths the hex rounding alone would lose.
func (b *BitArray) UnmarshalJSON(data []byte) error {
	var aux bitArrayJSON
	if err := gojson.Unmarshal(data, &aux); err != nil {
		return err
	}
	loaded := (uint64(len(aux.Hex))*4 + 7) &^ 7
	if aux.Length > loaded {
		return ErrBadFormat
	}
	b.Resize(0)
	if _, err := b.FromHex(0, aux.Hex); err != nil {
		return err
	}
	b.Resize(aux.Length)
	return nil
}
