package main

import (
	"time"

	"github.com/gordonklaus/tiltloop"
	"github.com/gordonklaus/tiltloop/audio"
)

// wanderer drifts slowly through all orientations when no sensor is around.
type wanderer struct {
	gamma, beta, alpha *audio.SlowRand
}

func newWanderer(tickRate float64, seed int64) *wanderer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &wanderer{
		gamma: audio.NewSlowRand(.05, seed),
		beta:  audio.NewSlowRand(.03, seed+1),
		alpha: audio.NewSlowRand(.02, seed+2),
	}
	for _, r := range []*audio.SlowRand{w.gamma, w.beta, w.alpha} {
		r.SetTickRate(tickRate)
	}
	return w
}

// At advances one tick; it ignores t.
func (w *wanderer) At(float64) (tiltloop.Orientation, bool) {
	return tiltloop.Orientation{
		Gamma: w.gamma.Step() / .8 * 90,
		Beta:  w.beta.Step() / .8 * 180,
		Alpha: (w.alpha.Step()/.8 + 1) * 180,
	}, true
}
