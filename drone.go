package tiltloop

import (
	"math"

	"github.com/gordonklaus/tiltloop/audio"
)

// Minor seventh: root, minor third, fifth, minor seventh.
var chordSemitones = [4]float64{0, 3, 7, 10}

func ChordFrequencies(root float64) [4]float64 {
	var f [4]float64
	for i, s := range chordSemitones {
		f[i] = root * math.Exp2(s/12)
	}
	return f
}

const droneBase = .08

// Breathing rates (Hz) and depths, different per voice so the voices drift
// in and out of phase.
var droneLFOs = [4]struct{ rate, depth float64 }{
	{.07, .05},
	{.11, .04},
	{.13, .06},
	{.19, .03},
}

type DroneVoice struct {
	Tone  *audio.FixedFreqSineOsc
	LFO   *audio.FixedFreqSineOsc
	base  float64
	depth float64
}

// Drone is the four note chord that sounds under everything.
type Drone struct {
	Voices [4]*DroneVoice
}

func NewDrone(root float64) *Drone {
	d := &Drone{}
	for i, f := range ChordFrequencies(root) {
		lfo := audio.NewFixedFreqSineOsc(droneLFOs[i].rate)
		lfo.SetPhase(float64(i) / 4)
		d.Voices[i] = &DroneVoice{
			Tone:  audio.NewFixedFreqSineOsc(f),
			LFO:   lfo,
			base:  droneBase,
			depth: droneLFOs[i].depth,
		}
	}
	return d
}

func (d *Drone) Render(a audio.Audio) {
	a.Zero()
	for _, v := range d.Voices {
		for i := range a {
			a[i] += v.Tone.Sine() * (v.base + v.depth*v.LFO.Sine())
		}
	}
}
