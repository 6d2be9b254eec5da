package tiltloop

import "math"

// Orientation is one device orientation sample in degrees: Gamma is the
// left/right tilt in [-90, 90], Beta the front/back tilt in [-180, 180] and
// Alpha the compass rotation in [0, 360).
type Orientation struct {
	Gamma, Beta, Alpha float64
}

// Normalized holds the three angles mapped onto [0, 1].
type Normalized struct {
	G, B, A float64
}

func (o Orientation) Normalize() Normalized {
	return Normalized{
		G: clamp01((o.Gamma + 90) / 180),
		B: clamp01((o.Beta + 180) / 360),
		A: clamp01(o.Alpha / 360),
	}
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}

// Target is what one looper reads from a sample, all in [0, 1].  Speed is
// quantized by MapToSpeed and Stutter scaled to Hz before use.
type Target struct {
	Glitch, Speed, Stutter float64
}

// Each looper reads a different angle for each parameter so the loops do
// not move in lockstep.
var routes = [NumLoopers]func(n Normalized) Target{
	func(n Normalized) Target { return Target{Glitch: n.G, Speed: n.B, Stutter: n.A} },
	func(n Normalized) Target { return Target{Glitch: n.B, Speed: n.A, Stutter: n.G} },
	func(n Normalized) Target { return Target{Glitch: n.A, Speed: n.G, Stutter: n.B} },
	func(n Normalized) Target { return Target{Glitch: (n.G + n.B) / 2, Speed: n.A, Stutter: n.G} },
}

// Route returns the targets looper i takes from n.
func Route(i int, n Normalized) Target { return routes[i](n) }

// Mapper fans orientation samples out to looper targets.
type Mapper struct {
	MaxStutterHz float64
}

func (m Mapper) Apply(o Orientation, loopers []*Looper) {
	n := o.Normalize()
	for i, l := range loopers {
		t := Route(i, n)
		l.SetGlitchTarget(t.Glitch)
		l.SetTargetRate(MapToSpeed(t.Speed))
		l.SetStutterTarget(t.Stutter * m.MaxStutterHz)
	}
}
