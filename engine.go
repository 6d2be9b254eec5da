package tiltloop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gordonklaus/tiltloop/audio"
	"github.com/gordonklaus/tiltloop/util"
)

// Engine owns one drone, four loopers and the graph joining them, and drives
// them from a Host.  Every method is safe to call before Start and after
// Close; commands issued then do nothing.
type Engine struct {
	cfg    Config
	host   audio.Host
	log    *slog.Logger
	events *util.Signal[Event]

	mu      sync.Mutex // lifecycle and transport; never taken on the render path
	running *running

	live    atomic.Pointer[state] // read by the render path
	frameMu sync.Mutex
}

// state is everything Start builds.  It is published whole, so the render
// path sees either a complete engine or none.
type state struct {
	graph   *Graph
	loopers []*Looper
	mapper  Mapper
}

type running struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func NewEngine(cfg Config, host audio.Host) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		host:   host,
		log:    cfg.logger(),
		events: util.NewSignal[Event](),
	}, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Subscribe registers f for every event the engine publishes.  f runs on the
// goroutine that caused the event and must not call back into the engine's
// transport methods.
func (e *Engine) Subscribe(f func(Event)) *util.SignalConnection[Event] {
	return e.events.Connect(f)
}

// Start builds the graph and loopers, opens the host and starts the update
// loop.  It does nothing if the engine is already running.  On failure it
// returns a *StartError and leaves nothing running.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running != nil {
		return nil
	}

	st, err := e.build()
	if err != nil {
		e.log.Error("engine start failed", "stage", "graph", "err", err)
		return &StartError{Stage: "graph", Err: err}
	}
	e.live.Store(st)
	if err := e.host.Start(e.cfg.params(), e); err != nil {
		e.live.Store(nil)
		e.log.Error("engine start failed", "stage", "host", "err", err)
		return &StartError{Stage: "host", Err: err}
	}

	ctx, cancel := context.WithCancel(ctx)
	r := &running{cancel: cancel, done: make(chan struct{})}
	e.running = r
	if e.cfg.FrameRate > 0 {
		go e.run(ctx, r.done)
	} else {
		close(r.done)
	}

	e.log.Info("engine started", "sample_rate", e.cfg.SampleRate, "block", e.cfg.BlockSize, "loopers", NumLoopers)
	for i := range st.loopers {
		e.events.Emit(StatusEvent{Looper: i, Status: StatusReady})
	}
	return nil
}

func (e *Engine) build() (st *state, err error) {
	// node initialization panics on impossible parameters
	defer func() {
		if x := recover(); x != nil {
			st, err = nil, fmt.Errorf("%v", x)
		}
	}()

	st = &state{mapper: Mapper{MaxStutterHz: e.cfg.MaxStutterHz}}
	var sources [NumLoopers]audio.Source
	for i := range sources {
		l := newLooper(i, e.cfg.capacity(), e.cfg.GlitchSmoothing, e.cfg.StutterSmoothing)
		st.loopers = append(st.loopers, l)
		sources[i] = l
	}
	st.graph, err = newGraph(e.cfg, sources)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// Close stops the update loop and the host and discards the loopers.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running == nil {
		return nil
	}
	e.running.cancel()
	<-e.running.done
	e.running = nil
	err := e.host.Stop()
	e.live.Store(nil)
	e.log.Info("engine stopped")
	return err
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running != nil
}

// Process renders one block.  It is the engine's audio.Processor and runs on
// the host's audio goroutine.
func (e *Engine) Process(in, out []float32) {
	st := e.live.Load()
	if st == nil {
		for i := range out {
			out[i] = 0
		}
		return
	}
	for _, l := range st.loopers {
		l.Capture(in)
	}
	st.graph.Render(out)
}

func (e *Engine) Record(i int) error { return e.transport(i, "record", (*Looper).StartRecording) }
func (e *Engine) Play(i int) error   { return e.transport(i, "play", (*Looper).StartPlayback) }
func (e *Engine) Stop(i int) error   { return e.transport(i, "stop", (*Looper).Stop) }
func (e *Engine) Clear(i int) error  { return e.transport(i, "clear", (*Looper).Clear) }

func (e *Engine) transport(i int, cmd string, f func(*Looper) (Status, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, err := e.looper(i)
	if err != nil {
		e.log.Debug("command ignored", "cmd", cmd, "looper", i, "err", err)
		return err
	}
	status, err := f(l)
	if status != "" {
		e.log.Debug("transport", "cmd", cmd, "looper", i, "state", l.State())
		e.events.Emit(StatusEvent{Looper: i, Status: status})
	}
	if err != nil {
		e.log.Info("command refused", "cmd", cmd, "looper", i, "state", l.State(), "err", err)
		return err
	}
	return nil
}

func (e *Engine) looper(i int) (*Looper, error) {
	st := e.live.Load()
	if st == nil {
		return nil, ErrEngineNotStarted
	}
	if i < 0 || i >= len(st.loopers) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchLooper, i)
	}
	return st.loopers[i], nil
}

// Looper returns looper i, or nil before Start.
func (e *Engine) Looper(i int) *Looper {
	l, _ := e.looper(i)
	return l
}

// Graph returns the running graph, or nil before Start.
func (e *Engine) Graph() *Graph {
	if st := e.live.Load(); st != nil {
		return st.graph
	}
	return nil
}

// SetReverbMix sets the wet share of the master bus in percent.
func (e *Engine) SetReverbMix(percent float64) error {
	g := e.Graph()
	if g == nil {
		return ErrEngineNotStarted
	}
	g.SetReverbMix(percent)
	return nil
}

func (e *Engine) SetMasterVolume(v float64) error {
	g := e.Graph()
	if g == nil {
		return ErrEngineNotStarted
	}
	g.Master.Set(max(0, v))
	return nil
}

func (e *Engine) SetLoopGain(i int, v float64) error {
	g := e.Graph()
	if g == nil {
		return ErrEngineNotStarted
	}
	if i < 0 || i >= NumLoopers {
		return fmt.Errorf("%w: %d", ErrNoSuchLooper, i)
	}
	g.LoopGains[i].Set(max(0, v))
	return nil
}

// OnOrientationSample routes a sample in degrees to the loopers' targets.
func (e *Engine) OnOrientationSample(gamma, beta, alpha float64) {
	st := e.live.Load()
	if st == nil {
		return
	}
	o := Orientation{Gamma: gamma, Beta: beta, Alpha: alpha}
	st.mapper.Apply(o, st.loopers)
	e.events.Emit(OrientationEvent{Orientation: o})
}

// Tick runs one frame of the update loop.  With a positive FrameRate the
// engine calls it itself.
func (e *Engine) Tick() {
	e.frameMu.Lock()
	defer e.frameMu.Unlock()

	st := e.live.Load()
	if st == nil {
		return
	}
	var frame FrameEvent
	for i, l := range st.loopers {
		if l.autoStopped.Swap(false) {
			e.log.Debug("recording buffer full", "looper", i)
			e.events.Emit(StatusEvent{Looper: i, Status: StatusStopped})
		}
		f := l.Tick()
		f.RecordedSeconds = float64(l.RecordedLength()) / e.cfg.SampleRate
		frame.Loopers[i] = f
	}
	frame.Level = st.graph.Meter.Level()
	e.events.Emit(frame)
}

func (e *Engine) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(time.Duration(float64(time.Second) / e.cfg.FrameRate))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			e.Tick()
		}
	}
}
