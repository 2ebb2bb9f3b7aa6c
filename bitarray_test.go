package bitarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New(t *testing.T) {
	a := New(0)
	assert.EqualValues(t, 0, a.Len())
	assert.Empty(t, a.Words())

	a = New(100)
	assert.EqualValues(t, 100, a.Len())
	assert.EqualValues(t, 2, len(a.Words()))
	for i := uint64(0); i < 100; i++ {
		assert.False(t, a.Get(i))
	}
}

func Test_ResizeGrow(t *testing.T) {
	a := New(10)
	a.SetBits(0, 5, 9)
	a.Resize(200)
	assert.EqualValues(t, 200, a.Len())
	assert.EqualValues(t, 3, a.OnesCount())
	for i := uint64(10); i < 200; i++ {
		assert.False(t, a.Get(i))
	}
}

func Test_ResizeShrinkRezeroesTail(t *testing.T) {
	a := New(10)
	a.SetAll()
	a.Resize(5)
	assert.EqualValues(t, 5, a.OnesCount())
	a.Resize(10)
	// the bits dropped by the shrink must come back as zeros
	for i := uint64(5); i < 10; i++ {
		assert.False(t, a.Get(i))
	}
	assert.EqualValues(t, 5, a.OnesCount())
}

func Test_TailInvariant(t *testing.T) {
	a := New(70)
	a.SetAll()
	words := a.Words()
	assert.EqualValues(t, 2, len(words))
	assert.EqualValues(t, ^uint64(0), words[0])
	assert.EqualValues(t, uint64(0x3F), words[1])

	a.ToggleAll()
	assert.EqualValues(t, 0, a.OnesCount())
	assert.EqualValues(t, 0, a.Words()[1])
}

func Test_EnsureSize(t *testing.T) {
	a := New(10)
	a.EnsureSize(5)
	assert.EqualValues(t, 10, a.Len())
	a.EnsureSize(80)
	assert.EqualValues(t, 80, a.Len())
}

func Test_Clone(t *testing.T) {
	a := New(130)
	a.SetBits(0, 64, 129)
	c := a.Clone()
	assert.EqualValues(t, 0, a.Cmp(c))
	c.Clear(64)
	assert.True(t, a.Get(64))
	assert.False(t, c.Get(64))
	a.Resize(10)
	assert.EqualValues(t, 130, c.Len())
}
