package audio

import "math"

// AmpMeter measures RMS amplitude over a sliding window.  Measure runs on
// the render path; Level may be read from anywhere.
type AmpMeter struct {
	windowSize float64
	buf        Audio
	i          int
	sum        float64
	level      AtomicFloat64
}

func NewAmpMeter(windowSize float64) *AmpMeter {
	return &AmpMeter{windowSize: windowSize}
}

func (a *AmpMeter) InitAudio(p Params) {
	n := int(p.SampleRate * a.windowSize)
	if n < 1 {
		n = 1
	}
	a.buf = make(Audio, n)
	a.i, a.sum = 0, 0
	a.level.Store(0)
}

func (a *AmpMeter) Measure(x Audio) float64 {
	for _, x := range x {
		a.sum -= a.buf[a.i]
		a.buf[a.i] = x * x
		a.sum += a.buf[a.i]
		a.i = (a.i + 1) % len(a.buf)
	}
	l := math.Sqrt(math.Max(0, a.sum) / float64(len(a.buf)))
	a.level.Store(l)
	return l
}

func (a *AmpMeter) Level() float64 { return a.level.Load() }
