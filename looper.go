package tiltloop

import (
	"sync/atomic"

	"github.com/gordonklaus/tiltloop/audio"
)

// State is a looper's transport state.  Recording and Playing exclude each
// other because they are values of one field.
type State int32

const (
	Idle State = iota
	Recording
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// A take is one pass of recording.  Starting a new recording or clearing
// swaps in a fresh take, so a render block still writing to the old one
// cannot move the new take's position.
type take struct {
	pos atomic.Int64
}

// Looper is one record/playback channel.
//
// The render path calls Capture and Render.  Transport methods must be
// serialized by the caller (Engine holds a mutex for them) and never run on
// the render path.  Tick belongs to the update loop.  Target setters may be
// called from anywhere.
type Looper struct {
	index int
	buf   []float32

	take        atomic.Pointer[take]
	state       atomic.Int32
	voice       atomic.Pointer[voice]
	autoStopped atomic.Bool

	targetRate audio.AtomicFloat64
	rate       audio.AtomicFloat64
	glitch     *audio.Smoother
	stutter    *audio.Smoother
}

func newLooper(index, capacity int, glitchSmoothing, stutterSmoothing float64) *Looper {
	l := &Looper{
		index:   index,
		buf:     make([]float32, capacity),
		glitch:  audio.NewSmoother(0, glitchSmoothing),
		stutter: audio.NewSmoother(0, stutterSmoothing),
	}
	l.take.Store(&take{})
	l.targetRate.Store(1)
	l.rate.Store(1)
	return l
}

func (l *Looper) Index() int               { return l.index }
func (l *Looper) State() State             { return State(l.state.Load()) }
func (l *Looper) Capacity() int            { return len(l.buf) }
func (l *Looper) WritePosition() int       { return int(l.take.Load().pos.Load()) }
func (l *Looper) RecordedLength() int      { return l.WritePosition() }
func (l *Looper) TargetRate() float64      { return l.targetRate.Load() }
func (l *Looper) PlaybackRate() float64    { return l.rate.Load() }
func (l *Looper) GlitchIntensity() float64 { return l.glitch.Value() }
func (l *Looper) StutterRate() float64     { return l.stutter.Value() }

func (l *Looper) SetGlitchTarget(x float64)  { l.glitch.SetTarget(x) }
func (l *Looper) SetStutterTarget(x float64) { l.stutter.SetTarget(x) }
func (l *Looper) SetTargetRate(r float64)    { l.targetRate.Store(r) }

func (l *Looper) StartRecording() (Status, error) {
	if l.State() == Playing {
		l.stopPlayback()
	}
	l.take.Store(&take{})
	l.autoStopped.Store(false)
	l.state.Store(int32(Recording))
	return StatusRecording, nil
}

func (l *Looper) StopRecording() (Status, error) {
	if !l.state.CompareAndSwap(int32(Recording), int32(Idle)) {
		return "", nil
	}
	return StatusStopped, nil
}

// StartPlayback stops recording first.  With nothing recorded it refuses,
// still reporting STOPPED if it ended a recording.
func (l *Looper) StartPlayback() (Status, error) {
	stopped, _ := l.StopRecording()
	n := l.RecordedLength()
	if n == 0 {
		return stopped, ErrNothingRecorded
	}
	v := newVoice(append([]float32(nil), l.buf[:n]...), l.targetRate.Load())
	l.rate.Store(l.targetRate.Load())
	l.voice.Store(v)
	l.state.Store(int32(Playing))
	return StatusPlaying, nil
}

func (l *Looper) StopPlayback() (Status, error) {
	if l.State() != Playing {
		return "", nil
	}
	l.stopPlayback()
	return StatusStopped, nil
}

func (l *Looper) stopPlayback() {
	l.voice.Store(nil)
	l.state.Store(int32(Idle))
}

// Stop ends whichever of recording or playback is active.
func (l *Looper) Stop() (Status, error) {
	switch l.State() {
	case Recording:
		return l.StopRecording()
	case Playing:
		return l.StopPlayback()
	}
	return "", nil
}

func (l *Looper) Clear() (Status, error) {
	l.voice.Store(nil)
	l.state.Store(int32(Idle))
	l.take.Store(&take{})
	l.autoStopped.Store(false)
	return StatusReady, nil
}

// Capture appends live input while recording.  It fills at most the rest of
// the buffer and stops recording once the buffer is full.
func (l *Looper) Capture(in []float32) {
	// take before state: a block racing Clear writes to the discarded take
	t := l.take.Load()
	if l.State() != Recording {
		return
	}
	pos := int(t.pos.Load())
	n := copy(l.buf[pos:], in)
	t.pos.Store(int64(pos + n))
	// a stale take must not stop the recording that replaced it
	if pos+n == len(l.buf) && l.take.Load() == t && l.state.CompareAndSwap(int32(Recording), int32(Idle)) {
		l.autoStopped.Store(true)
	}
}

// Render plays the active voice, or silence.
func (l *Looper) Render(a audio.Audio) {
	v := l.voice.Load()
	if v == nil {
		a.Zero()
		return
	}
	v.Render(a)
}

// Tick advances the smoothers one frame and applies the target rate
// unsmoothed, live, to the active voice.
func (l *Looper) Tick() LooperFrame {
	glitch := l.glitch.Step()
	stutter := l.stutter.Step()
	r := l.targetRate.Load()
	l.rate.Store(r)
	if v := l.voice.Load(); v != nil {
		v.rate.Store(r)
	}
	return LooperFrame{
		State:        l.State(),
		PlaybackRate: r,
		Glitch:       glitch,
		Stutter:      stutter,
	}
}
