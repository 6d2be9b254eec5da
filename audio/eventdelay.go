package audio

// EventDelay schedules functions on the sample clock.  Events due by the end
// of a block run in the order they are due, at the start of the block.
type EventDelay struct {
	Params Params
	events []delayEvent
}

type delayEvent struct {
	n int
	f func()
}

// Delay schedules f to run t seconds from now.
func (d *EventDelay) Delay(t float64, f func()) {
	if d.Params.SampleRate == 0 {
		panic("EventDelay.Delay called before InitAudio")
	}
	n := int(t * d.Params.SampleRate)
	i := 0
	for ; i < len(d.events); i++ {
		e := &d.events[i]
		if n < e.n {
			e.n -= n
			break
		}
		n -= e.n
	}
	d.events = append(d.events, delayEvent{})
	copy(d.events[i+1:], d.events[i:])
	d.events[i] = delayEvent{n, f}
}

// Advance moves the clock on by n samples and runs everything due.
func (d *EventDelay) Advance(n int) {
	for len(d.events) > 0 {
		e := &d.events[0]
		if e.n > n {
			e.n -= n
			return
		}
		n -= e.n
		f := e.f
		d.events = d.events[1:]
		f()
	}
}

func (d *EventDelay) Pending() int { return len(d.events) }
