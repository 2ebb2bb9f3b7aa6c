package testhelpers

import "math/rand"

// SeqGen produces deterministic uint64 sequences for tests.
type SeqGen interface {
	Seed(value uint64)
	Next() uint64
	Reset()
}

const (
	SgRand = iota
	SgSeq
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	default:
		panic("invalid sequence generator type")
	}
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint64 {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return g.r.Uint64()
}

func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}

func (g *randSG) Seed(value uint64) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint64
}

func (g *seqSG) Next() uint64 {
	g.cur++
	return g.cur
}

func (g *seqSG) Reset() {
	g.cur = 0
}

func (g *seqSG) Seed(value uint64) {
	g.cur = value
}
