package audio

import (
	"math"
	"math/rand"
	"time"
)

// Reverb convolves its input with a synthetic impulse response: white noise
// under a (1 - t/T)^2 envelope, normalized to unit energy.
type Reverb struct {
	seconds float64
	seed    int64
	ir      []float64
	conv    *Convolver
}

// NewReverb returns a reverb with a tail of the given length.  A zero seed
// draws the noise from the clock.
func NewReverb(seconds float64, seed int64) *Reverb {
	return &Reverb{seconds: seconds, seed: seed}
}

func (r *Reverb) InitAudio(p Params) {
	seed := r.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.ir = DecayingNoise(int(r.seconds*p.SampleRate), rand.New(rand.NewSource(seed)))
	conv, err := NewConvolver(r.ir, partitionSize(p.BlockSize))
	if err != nil {
		panic(err)
	}
	r.conv = conv
}

// partitionSize rounds n up to a power of two.
func partitionSize(n int) int {
	b := 1
	for b < n {
		b <<= 1
	}
	return b
}

func (r *Reverb) Impulse() []float64 { return r.ir }

func (r *Reverb) Reverb(x float64) float64 {
	return r.conv.Convolve(x)
}

func DecayingNoise(n int, rand *rand.Rand) []float64 {
	ir := make([]float64, n)
	energy := 0.0
	for i := range ir {
		env := 1 - float64(i)/float64(n)
		ir[i] = (2*rand.Float64() - 1) * env * env
		energy += ir[i] * ir[i]
	}
	if energy > 0 {
		g := 1 / math.Sqrt(energy)
		for i := range ir {
			ir[i] *= g
		}
	}
	return ir
}
