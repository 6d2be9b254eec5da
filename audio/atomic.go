package audio

import (
	"math"
	"sync/atomic"
)

// AtomicFloat64 is a float64 that may be written by one goroutine while the
// render path reads it.
type AtomicFloat64 struct {
	bits atomic.Uint64
}

func NewAtomicFloat64(x float64) *AtomicFloat64 {
	f := &AtomicFloat64{}
	f.Store(x)
	return f
}

func (f *AtomicFloat64) Load() float64   { return math.Float64frombits(f.bits.Load()) }
func (f *AtomicFloat64) Store(x float64) { f.bits.Store(math.Float64bits(x)) }
