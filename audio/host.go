package audio

import "errors"

var (
	// ErrPermissionDenied means the host refused to open the audio device.
	ErrPermissionDenied = errors.New("audio device access denied")
	ErrNoDevice         = errors.New("no audio device available")
	ErrAlreadyStarted   = errors.New("audio host already started")
)

// A Processor is called by a Host once per block, on the host's audio
// goroutine.  in holds the live input for the block and is silent when the
// host has none; out must be filled completely.  Process must not block.
type Processor interface {
	Process(in, out []float32)
}

type ProcessorFunc func(in, out []float32)

func (f ProcessorFunc) Process(in, out []float32) { f(in, out) }

// A Host drives a Processor from an audio clock.
type Host interface {
	Start(p Params, proc Processor) error
	Stop() error
}

// silence returns a zeroed input block of length n, reusing buf.
func silence(buf *[]float32, n int) []float32 {
	if cap(*buf) < n {
		*buf = make([]float32, n)
	}
	b := (*buf)[:n]
	for i := range b {
		b[i] = 0
	}
	return b
}
