package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gordonklaus/tiltloop"
)

// display keeps a one line summary of the engine on a terminal.
type display struct {
	w        io.Writer
	interval time.Duration

	mu       sync.Mutex
	status   [tiltloop.NumLoopers]tiltloop.Status
	frame    tiltloop.FrameEvent
	tilt     tiltloop.Orientation
	selected int
	reverb   float64
	last     time.Time
}

func newDisplay(w io.Writer) *display {
	d := &display{w: w, interval: 100 * time.Millisecond}
	for i := range d.status {
		d.status[i] = tiltloop.StatusReady
	}
	return d
}

func (d *display) handle(e tiltloop.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch e := e.(type) {
	case tiltloop.StatusEvent:
		d.status[e.Looper] = e.Status
		d.draw()
	case tiltloop.OrientationEvent:
		d.tilt = e.Orientation
	case tiltloop.FrameEvent:
		d.frame = e
		if time.Since(d.last) >= d.interval {
			d.draw()
		}
	}
}

func (d *display) setSelected(i int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = i
	d.draw()
}

func (d *display) setReverb(p float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reverb = p
}

func (d *display) draw() {
	d.last = time.Now()
	fmt.Fprint(d.w, "\r"+d.line()+"\x1b[K")
}

func (d *display) line() string {
	var b strings.Builder
	for i, l := range d.frame.Loopers {
		mark := " "
		if i == d.selected {
			mark = ">"
		}
		fmt.Fprintf(&b, "%s%d %-9s x%-5g g%.2f s%4.1f %4.1fs  ", mark, i+1, d.status[i], l.PlaybackRate, l.Glitch, l.Stutter, l.RecordedSeconds)
	}
	fmt.Fprintf(&b, "| tilt %4.0f %4.0f %3.0f | rev %3.0f%% | %s", d.tilt.Gamma, d.tilt.Beta, d.tilt.Alpha, d.reverb, levelString(d.frame.Level))
	return b.String()
}

func levelString(rms float64) string {
	if rms <= 1e-5 {
		return "  -inf dB"
	}
	return fmt.Sprintf("%6.1f dB", 20*math.Log10(rms))
}
