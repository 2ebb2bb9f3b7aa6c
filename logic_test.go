package bitarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LogicIdentities(t *testing.T) {
	v := New(130)
	v.SetBits(0, 3, 64, 100, 129)

	x := New(0)
	x.Xor(v, v)
	assert.EqualValues(t, 130, x.Len())
	assert.EqualValues(t, 0, x.OnesCount())

	n := New(0)
	n.Not(v)
	assert.EqualValues(t, 130, n.Len())

	and := New(0)
	and.And(v, n)
	assert.EqualValues(t, 0, and.OnesCount())

	or := New(0)
	or.Or(v, n)
	assert.EqualValues(t, 130, or.OnesCount())
}

func Test_LogicUnequalLengths(t *testing.T) {
	a := New(4)
	a.SetAll()
	b := New(8)
	b.Set(7)

	or := New(0)
	or.Or(a, b)
	assert.EqualValues(t, 8, or.Len())
	assert.EqualValues(t, "11110001", or.String())

	and := New(0)
	and.And(a, b)
	assert.EqualValues(t, 8, and.Len())
	assert.EqualValues(t, 0, and.OnesCount())
}

func Test_LogicAliasedDestination(t *testing.T) {
	a := New(8)
	a.SetBits(0, 2, 4)
	b := New(8)
	b.SetBits(2, 3)
	a.And(a, b)
	assert.EqualValues(t, "00100000", a.String())

	c := New(8)
	c.SetBits(0, 1)
	c.Not(c)
	assert.EqualValues(t, "00111111", c.String())
}

func Test_NotRezeroesTail(t *testing.T) {
	v := New(70)
	v.Not(v)
	assert.EqualValues(t, 70, v.OnesCount())
	assert.EqualValues(t, uint64(0x3F), v.Words()[1])
}

func Test_ComplementRegion(t *testing.T) {
	v := New(100)
	v.ComplementRegion(10, 80)
	assert.EqualValues(t, 80, v.OnesCount())
	assert.False(t, v.Get(9))
	assert.True(t, v.Get(10))
	assert.True(t, v.Get(89))
	assert.False(t, v.Get(90))
	v.ComplementRegion(0, 100)
	assert.EqualValues(t, 20, v.OnesCount())
}

func Test_Cmp(t *testing.T) {
	a := New(8)
	a.SetBits(0, 2, 4) // 21
	b := New(8)
	b.SetBits(1, 3) // 10
	assert.EqualValues(t, 1, a.Cmp(b))
	assert.EqualValues(t, -1, b.Cmp(a))
	assert.EqualValues(t, 0, a.Cmp(a.Clone()))

	// longer array with only low bits set compares equal
	c := New(200)
	c.SetBits(0, 2, 4)
	assert.EqualValues(t, 0, a.Cmp(c))
	c.Set(150)
	assert.EqualValues(t, -1, a.Cmp(c))
}

func Test_LexCmp(t *testing.T) {
	// 2 vs 1: numerically 2 > 1, lexicographically "01" < "10"
	a := New(2)
	a.Set(1)
	b := New(2)
	b.Set(0)
	assert.EqualValues(t, 1, a.Cmp(b))
	assert.EqualValues(t, -1, a.LexCmp(b))

	// equality coincides between the two orderings across lengths
	c := New(2)
	c.Set(0)
	d := New(5)
	d.Set(0)
	assert.EqualValues(t, 0, c.Cmp(d))
	assert.EqualValues(t, 0, c.LexCmp(d))

	d.Set(4)
	assert.NotEqualValues(t, 0, c.Cmp(d))
	assert.NotEqualValues(t, 0, c.LexCmp(d))
}

func Test_CmpUint64(t *testing.T) {
	v := New(8)
	v.SetBits(0, 2, 4)
	assert.EqualValues(t, 0, v.CmpUint64(21))
	assert.EqualValues(t, 1, v.CmpUint64(20))
	assert.EqualValues(t, -1, v.CmpUint64(22))

	w := New(100)
	w.Set(80)
	assert.EqualValues(t, 1, w.CmpUint64(^uint64(0)))

	assert.EqualValues(t, 0, New(0).CmpUint64(0))
	assert.EqualValues(t, -1, New(0).CmpUint64(1))
}
