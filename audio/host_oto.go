//go:build !headless

package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
	otoRate int
)

func otoContext(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
			BufferSize:   20 * time.Millisecond,
		})
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx, otoRate = ctx, sampleRate
	})
	if otoErr != nil {
		return nil, otoErr
	}
	if otoRate != sampleRate {
		return nil, fmt.Errorf("oto context already running at %d Hz", otoRate)
	}
	return otoCtx, nil
}

// OtoHost is an output-only host; the processor always sees silent input.
type OtoHost struct {
	proc atomic.Pointer[Processor] // lock-free for Read
	in   []float32
	out  []float32
	size int

	mu     sync.Mutex // setup and control only
	player *oto.Player
}

func NewOtoHost() *OtoHost { return &OtoHost{} }

func (h *OtoHost) Start(p Params, proc Processor) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.player != nil {
		return ErrAlreadyStarted
	}
	ctx, err := otoContext(int(p.SampleRate))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	h.size = p.BlockSize
	h.in = make([]float32, p.BlockSize)
	h.out = make([]float32, p.BlockSize)
	h.proc.Store(&proc)
	h.player = ctx.NewPlayer(h)
	h.player.Play()
	return nil
}

// Read is called by oto's audio goroutine.
func (h *OtoHost) Read(p []byte) (int, error) {
	proc := h.proc.Load()
	n := len(p) / 4
	if proc == nil {
		for i := range p[:4*n] {
			p[i] = 0
		}
		return 4 * n, nil
	}
	for done := 0; done < n; {
		m := min(h.size, n-done)
		out := h.out[:m]
		(*proc).Process(silence(&h.in, m), out)
		for i, x := range out {
			binary.LittleEndian.PutUint32(p[4*(done+i):], math.Float32bits(x))
		}
		done += m
	}
	return 4 * n, nil
}

func (h *OtoHost) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.player == nil {
		return nil
	}
	h.proc.Store(nil)
	err := h.player.Close()
	h.player = nil
	return err
}
