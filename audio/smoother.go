package audio

// Smoother is a one-pole filter advanced once per update tick.  Each Step
// moves the current value a fixed fraction of the way to the target, so it
// approaches the target from one side without overshooting when the factor
// is in (0, 1].
//
// The target may be set from any goroutine; Step and Value belong to the
// goroutine that drives the ticks.
type Smoother struct {
	current float64
	target  AtomicFloat64
	factor  float64
}

func NewSmoother(initial, factor float64) *Smoother {
	s := &Smoother{current: initial, factor: factor}
	s.target.Store(initial)
	return s
}

func (s *Smoother) SetTarget(x float64) { s.target.Store(x) }
func (s *Smoother) Target() float64     { return s.target.Load() }
func (s *Smoother) Value() float64      { return s.current }
func (s *Smoother) Factor() float64     { return s.factor }

func (s *Smoother) Step() float64 {
	s.current += (s.target.Load() - s.current) * s.factor
	return s.current
}

// Reset jumps straight to x.
func (s *Smoother) Reset(x float64) {
	s.current = x
	s.target.Store(x)
}
