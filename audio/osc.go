package audio

import (
	"math"
	"math/cmplx"
)

// FixedFreqSineOsc rotates a unit phasor by a constant step each sample.
type FixedFreqSineOsc struct {
	Params Params
	freq   float64
	x, d   complex128
	n      int
}

func NewFixedFreqSineOsc(freq float64) *FixedFreqSineOsc {
	return &FixedFreqSineOsc{freq: freq}
}

func (o *FixedFreqSineOsc) InitAudio(p Params) {
	o.Params = p
	o.SetFreq(o.freq)
}

func (o *FixedFreqSineOsc) Freq() float64 { return o.freq }

func (o *FixedFreqSineOsc) SetFreq(freq float64) {
	o.freq = freq
	if o.x == 0 {
		o.SetPhase(0)
	}
	o.d = cmplx.Exp(complex(0, 2*math.Pi*freq/o.Params.SampleRate))
}

// SetPhase sets the phase in cycles.  Phase 0 starts the sine at zero.
func (o *FixedFreqSineOsc) SetPhase(phase float64) {
	o.x = cmplx.Exp(complex(0, 2*math.Pi*phase))
}

func (o *FixedFreqSineOsc) Sine() float64 {
	y := imag(o.x)
	o.x *= o.d
	// rounding slowly changes the phasor's magnitude
	if o.n++; o.n == 1<<14 {
		o.n = 0
		o.x /= complex(cmplx.Abs(o.x), 0)
	}
	return y
}

// Render fills a with consecutive samples.
func (o *FixedFreqSineOsc) Render(a Audio) Audio {
	for i := range a {
		a[i] = o.Sine()
	}
	return a
}
