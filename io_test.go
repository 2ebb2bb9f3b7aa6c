package bitarray

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SaveLoadRoundTrip(t *testing.T) {
	for _, nbits := range []uint64{0, 1, 8, 13, 64, 65, 130} {
		v := New(nbits)
		v.Random(0.5)

		var buf bytes.Buffer
		n, err := v.Save(&buf)
		require.NoError(t, err)
		assert.EqualValues(t, 8+(nbits+7)/8, n)
		assert.EqualValues(t, n, buf.Len())

		w := New(3)
		w.SetAll()
		require.NoError(t, w.Load(&buf))
		assert.EqualValues(t, nbits, w.Len())
		assert.EqualValues(t, 0, v.Cmp(w))
		assert.EqualValues(t, v.String(), w.String())
	}
}

func Test_SaveLayout(t *testing.T) {
	v := New(8)
	v.SetBits(0, 2, 4)
	var buf bytes.Buffer
	_, err := v.Save(&buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 0, 0, 0, 0, 0, 0, 0, 0x15}, buf.Bytes())
}

func Test_LoadTruncated(t *testing.T) {
	// short header
	v := New(5)
	v.SetAll()
	assert.Error(t, v.Load(bytes.NewReader([]byte{1, 2, 3})))
	assert.EqualValues(t, 5, v.Len())
	assert.EqualValues(t, 5, v.OnesCount())

	// header promises 100 bits, data falls short
	var buf bytes.Buffer
	big := New(100)
	big.SetAll()
	_, err := big.Save(&buf)
	require.NoError(t, err)
	short := buf.Bytes()[:12]
	assert.Error(t, v.Load(bytes.NewReader(short)))
	assert.EqualValues(t, 5, v.Len())
	assert.EqualValues(t, 5, v.OnesCount())
}

func Test_LoadCorruptHeader(t *testing.T) {
	// header claims 2^62 bits with nothing behind it; the read must fail
	// before committing to an allocation of that size
	raw := make([]byte, 16)
	binary.LittleEndian.PutUint64(raw, 1<<62)
	v := New(5)
	v.SetAll()
	assert.Error(t, v.Load(bytes.NewReader(raw)))
	assert.EqualValues(t, 5, v.Len())
	assert.EqualValues(t, 5, v.OnesCount())
}

func Test_LoadMasksPadding(t *testing.T) {
	// 3 valid bits but a full data byte: the pad bits must not leak in
	raw := []byte{3, 0, 0, 0, 0, 0, 0, 0, 0xFF}
	v := New(0)
	require.NoError(t, v.Load(bytes.NewReader(raw)))
	assert.EqualValues(t, 3, v.Len())
	assert.EqualValues(t, 3, v.OnesCount())
	assert.EqualValues(t, uint64(7), v.Words()[0])
}
