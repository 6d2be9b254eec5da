package audio

// Gain scales a signal by a coefficient that can change while audio runs.
type Gain struct {
	g AtomicFloat64
}

func NewGain(g float64) *Gain {
	n := &Gain{}
	n.g.Store(g)
	return n
}

func (n *Gain) Set(g float64)  { n.g.Store(g) }
func (n *Gain) Value() float64 { return n.g.Load() }

// Apply scales a in place.
func (n *Gain) Apply(a Audio) Audio {
	g := n.g.Load()
	if g == 1 {
		return a
	}
	return a.MulX(a, g)
}
