package audio

import (
	"fmt"

	"github.com/ktye/fft"
)

// Convolver convolves a signal with a fixed impulse response using uniformly
// partitioned overlap-save FFT convolution.  Output lags input by one
// partition.
type Convolver struct {
	block int
	fft   fft.FFT
	scale float64

	parts [][]complex128 // spectra of the impulse response partitions
	fdl   [][]complex128 // spectra of past input windows, newest at head
	head  int

	prev, in, out []float64
	buf, acc      []complex128
	i             int
}

// NewConvolver partitions ir into blocks of the given size, which must be a
// power of two.
func NewConvolver(ir []float64, block int) (*Convolver, error) {
	if block <= 0 || block&(block-1) != 0 {
		return nil, fmt.Errorf("convolver: block size %d is not a power of two", block)
	}
	n := 2 * block
	f, err := fft.New(n)
	if err != nil {
		return nil, err
	}

	// ktye/fft leaves normalization to the caller; measure it once.
	probe := make([]complex128, n)
	probe[0] = 1
	probe = f.Inverse(f.Transform(probe))

	numParts := (len(ir) + block - 1) / block
	if numParts == 0 {
		numParts = 1
	}
	c := &Convolver{
		block: block,
		fft:   f,
		scale: 1 / real(probe[0]),
		parts: make([][]complex128, numParts),
		fdl:   make([][]complex128, numParts),
		prev:  make([]float64, block),
		in:    make([]float64, block),
		out:   make([]float64, block),
		buf:   make([]complex128, n),
		acc:   make([]complex128, n),
	}
	for p := range c.parts {
		h := make([]complex128, n)
		for k := 0; k < block && p*block+k < len(ir); k++ {
			h[k] = complex(ir[p*block+k], 0)
		}
		c.parts[p] = append([]complex128(nil), f.Transform(h)...)
		c.fdl[p] = make([]complex128, n)
	}
	return c, nil
}

func (c *Convolver) Latency() int { return c.block }

func (c *Convolver) Convolve(x float64) float64 {
	y := c.out[c.i]
	c.in[c.i] = x
	c.i++
	if c.i == c.block {
		c.i = 0
		c.process()
	}
	return y
}

func (c *Convolver) process() {
	b := c.block
	for k := 0; k < b; k++ {
		c.buf[k] = complex(c.prev[k], 0)
		c.buf[b+k] = complex(c.in[k], 0)
	}
	copy(c.prev, c.in)
	copy(c.fdl[c.head], c.fft.Transform(c.buf))

	for k := range c.acc {
		c.acc[k] = 0
	}
	for p, h := range c.parts {
		x := c.fdl[(c.head-p+len(c.fdl))%len(c.fdl)]
		for k, hk := range h {
			c.acc[k] += x[k] * hk
		}
	}
	c.head = (c.head + 1) % len(c.fdl)

	y := c.fft.Inverse(c.acc)
	for k := 0; k < b; k++ {
		c.out[k] = real(y[b+k]) * c.scale
	}
}
