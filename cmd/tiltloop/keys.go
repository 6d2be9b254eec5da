package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gordonklaus/tiltloop"
	"golang.org/x/term"
)

// keyboard turns raw key presses into engine commands.
type keyboard struct {
	engine *tiltloop.Engine
	disp   *display
	log    *slog.Logger
	quit   func()

	fd       int
	oldState *term.State

	selected int
	reverb   float64
	volume   float64
	tilt     tiltloop.Orientation
}

func newKeyboard(e *tiltloop.Engine, d *display, log *slog.Logger, quit func()) *keyboard {
	return &keyboard{
		engine: e,
		disp:   d,
		log:    log,
		quit:   quit,
		volume: e.Config().MasterVolume,
	}
}

// Start puts the terminal in raw mode and reads keys until Stop or quit.
// Without a terminal on stdin it does nothing.
func (k *keyboard) Start() error {
	k.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(k.fd) {
		return nil
	}
	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	k.oldState = oldState

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n > 0 {
				k.key(buf[0])
			}
		}
	}()
	return nil
}

// Stop restores the terminal.  The reading goroutine ends with the process.
func (k *keyboard) Stop() {
	if k.oldState != nil {
		_ = term.Restore(k.fd, k.oldState)
		k.oldState = nil
		fmt.Println()
	}
}

func (k *keyboard) key(b byte) {
	var err error
	switch b {
	case '1', '2', '3', '4':
		k.selected = int(b - '1')
		k.disp.setSelected(k.selected)
	case 'r':
		err = k.engine.Record(k.selected)
	case 'p':
		err = k.engine.Play(k.selected)
	case 's':
		err = k.engine.Stop(k.selected)
	case 'c':
		err = k.engine.Clear(k.selected)
	case '[', ']':
		step := 10.0
		if b == '[' {
			step = -10
		}
		k.reverb = max(0, min(100, k.reverb+step))
		err = k.engine.SetReverbMix(k.reverb)
		k.disp.setReverb(k.reverb)
	case '-', '=':
		step := .1
		if b == '-' {
			step = -.1
		}
		k.volume = max(0, min(2, k.volume+step))
		err = k.engine.SetMasterVolume(k.volume)
	case 'h', 'l', 'j', 'k', 'u', 'i':
		k.nudge(b)
	case 'q', 3: // ctrl-c arrives as a byte in raw mode
		k.quit()
	}
	if err != nil {
		k.log.Debug("key ignored", "key", string(b), "err", err)
	}
}

func (k *keyboard) nudge(b byte) {
	switch b {
	case 'h':
		k.tilt.Gamma = max(-90, k.tilt.Gamma-10)
	case 'l':
		k.tilt.Gamma = min(90, k.tilt.Gamma+10)
	case 'j':
		k.tilt.Beta = max(-180, k.tilt.Beta-15)
	case 'k':
		k.tilt.Beta = min(180, k.tilt.Beta+15)
	case 'u':
		k.tilt.Alpha = float64((int(k.tilt.Alpha) + 345) % 360)
	case 'i':
		k.tilt.Alpha = float64((int(k.tilt.Alpha) + 15) % 360)
	}
	k.engine.OnOrientationSample(k.tilt.Gamma, k.tilt.Beta, k.tilt.Alpha)
}
