package audio

import (
	"errors"
	"testing"
)

func TestOfflineHost(t *testing.T) {
	var blocks []int
	h := &OfflineHost{BeforeBlock: func(n int) { blocks = append(blocks, n) }}
	count := float32(0)
	proc := ProcessorFunc(func(in, out []float32) {
		for i := range out {
			count++
			out[i] = in[i] + count
		}
	})
	if err := h.Start(Params{SampleRate: 100, BlockSize: 4}, proc); err != nil {
		t.Fatal(err)
	}
	if err := h.Start(Params{SampleRate: 100, BlockSize: 4}, proc); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second start: got %v, want ErrAlreadyStarted", err)
	}

	out := h.Run(10)
	if len(out) != 10 {
		t.Fatalf("rendered %d samples, want 10", len(out))
	}
	for i, x := range out {
		if x != float32(i+1) {
			t.Fatalf("sample %d = %v, want %v", i, x, i+1)
		}
	}
	if len(blocks) != 3 || blocks[0] != 4 || blocks[1] != 4 || blocks[2] != 2 {
		t.Errorf("blocks %v, want [4 4 2]", blocks)
	}

	out = h.Process([]float32{100, 100})
	if out[0] != 111 || out[1] != 112 {
		t.Errorf("with input got %v", out)
	}
	if h.Frames() != 12 {
		t.Errorf("frames %d, want 12", h.Frames())
	}

	h.Stop()
	if h.Started() {
		t.Error("still started after Stop")
	}
	for _, x := range h.Run(5) {
		if x != 0 {
			t.Fatal("stopped host rendered sound")
		}
	}
}

func TestOfflineHostDeny(t *testing.T) {
	h := &OfflineHost{Deny: ErrPermissionDenied}
	err := h.Start(Params{SampleRate: 100, BlockSize: 4}, ProcessorFunc(func(in, out []float32) {}))
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("got %v, want ErrPermissionDenied", err)
	}
	if h.Started() {
		t.Error("denied host reports started")
	}
}
