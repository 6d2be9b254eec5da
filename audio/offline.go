package audio

import "sync"

// OfflineHost drives a processor synchronously, one block at a time, on the
// goroutine calling Process or Run.  It stands in for a device in tests and renders to
// memory for WAV export.
type OfflineHost struct {
	// Deny, when set, is returned by Start to simulate a refused device.
	Deny error
	// BeforeBlock, when set, runs before each block with the block length.
	BeforeBlock func(n int)

	mu     sync.Mutex
	params Params
	proc   Processor
	in     []float32
	out    []float32
	frames int
}

func (h *OfflineHost) Start(p Params, proc Processor) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Deny != nil {
		return h.Deny
	}
	if h.proc != nil {
		return ErrAlreadyStarted
	}
	h.params, h.proc = p, proc
	h.out = make([]float32, p.BlockSize)
	return nil
}

func (h *OfflineHost) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.proc = nil
	return nil
}

func (h *OfflineHost) Started() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.proc != nil
}

// Frames is the number of samples rendered so far.
func (h *OfflineHost) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Process renders len(in) samples with in as the live input and returns the
// output.
func (h *OfflineHost) Process(in []float32) []float32 {
	return h.render(in, len(in))
}

// Run renders n samples with silent input.
func (h *OfflineHost) Run(n int) []float32 {
	return h.render(nil, n)
}

func (h *OfflineHost) render(in []float32, n int) []float32 {
	out := make([]float32, 0, n)
	for done := 0; done < n; {
		h.mu.Lock()
		proc, size := h.proc, h.params.BlockSize
		h.mu.Unlock()
		if proc == nil {
			return append(out, make([]float32, n-done)...)
		}

		m := min(size, n-done)
		if h.BeforeBlock != nil {
			h.BeforeBlock(m)
		}
		var block []float32
		if in != nil {
			block = in[done : done+m]
		} else {
			block = silence(&h.in, m)
		}
		o := h.out[:m]
		proc.Process(block, o)
		out = append(out, o...)
		done += m

		h.mu.Lock()
		h.frames += m
		h.mu.Unlock()
	}
	return out
}
