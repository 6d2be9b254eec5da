//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioHost runs the processor from the default PortAudio stream.  With
// input enabled the stream is duplex and the default input device feeds in.
type PortAudioHost struct {
	input bool

	mu     sync.Mutex
	stream *portaudio.Stream
	buf    []float32
}

func NewPortAudioHost(input bool) *PortAudioHost {
	return &PortAudioHost{input: input}
}

func (h *PortAudioHost) Start(p Params, proc Processor) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stream != nil {
		return ErrAlreadyStarted
	}
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	var (
		stream *portaudio.Stream
		err    error
	)
	if h.input {
		stream, err = portaudio.OpenDefaultStream(1, 1, p.SampleRate, p.BlockSize, func(in, out []float32) {
			proc.Process(in, out)
		})
	} else {
		h.buf = make([]float32, p.BlockSize)
		stream, err = portaudio.OpenDefaultStream(0, 1, p.SampleRate, p.BlockSize, func(out []float32) {
			proc.Process(silence(&h.buf, len(out)), out)
		})
	}
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	h.stream = stream
	return nil
}

func (h *PortAudioHost) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stream == nil {
		return nil
	}
	err := h.stream.Close()
	h.stream = nil
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
