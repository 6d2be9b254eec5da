package tiltloop

import (
	"math"

	"github.com/gordonklaus/tiltloop/audio"
)

// voice loops over its own copy of a recording.  Only the render path moves
// pos; rate may be changed while it plays.
type voice struct {
	samples []float32
	pos     float64
	rate    audio.AtomicFloat64
}

func newVoice(samples []float32, rate float64) *voice {
	v := &voice{samples: samples}
	v.rate.Store(rate)
	return v
}

func (v *voice) Len() int { return len(v.samples) }

// Render reads at the current rate, interpolating linearly between samples
// and wrapping at both ends.  At rate 1 it reproduces the samples exactly.
func (v *voice) Render(a audio.Audio) {
	n := len(v.samples)
	fn := float64(n)
	rate := v.rate.Load()
	for k := range a {
		i := int(v.pos)
		frac := v.pos - float64(i)
		x0 := float64(v.samples[i])
		x1 := float64(v.samples[(i+1)%n])
		a[k] = x0 + (x1-x0)*frac
		v.pos = wrap(v.pos+rate, fn)
	}
}

func wrap(pos, n float64) float64 {
	if pos >= 0 && pos < n {
		return pos
	}
	pos = math.Mod(pos, n)
	if pos < 0 {
		pos += n
	}
	if !(pos >= 0 && pos < n) {
		pos = 0
	}
	return pos
}
