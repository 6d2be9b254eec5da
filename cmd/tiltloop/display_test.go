package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gordonklaus/tiltloop"
)

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := newDisplay(&buf)
	d.handle(tiltloop.StatusEvent{Looper: 2, Status: tiltloop.StatusRecording})
	if !strings.Contains(buf.String(), "RECORDING") {
		t.Errorf("status change not drawn: %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "\r") {
		t.Errorf("line does not start with a carriage return: %q", buf.String())
	}

	d.setSelected(3)
	line := d.line()
	if !strings.Contains(line, ">4 ") {
		t.Errorf("selected looper not marked: %q", line)
	}
	if strings.Count(line, "READY") != 3 {
		t.Errorf("want three READY loopers: %q", line)
	}
}

func TestLevelString(t *testing.T) {
	for rms, want := range map[float64]string{
		0:  "  -inf dB",
		1:  "   0.0 dB",
		.1: " -20.0 dB",
	} {
		if got := levelString(rms); got != want {
			t.Errorf("levelString(%v) = %q, want %q", rms, got, want)
		}
	}
}
