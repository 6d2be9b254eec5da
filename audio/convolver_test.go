package audio

import (
	"math"
	"math/rand"
	"testing"
)

func TestConvolverIdentity(t *testing.T) {
	const block = 8
	c, err := NewConvolver([]float64{1}, block)
	if err != nil {
		t.Fatal(err)
	}
	if c.Latency() != block {
		t.Fatalf("latency %d, want %d", c.Latency(), block)
	}

	r := rand.New(rand.NewSource(1))
	x := make([]float64, 10*block)
	for i := range x {
		x[i] = 2*r.Float64() - 1
	}
	for i := range x {
		want := 0.0
		if i >= block {
			want = x[i-block]
		}
		if got := c.Convolve(x[i]); math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestConvolverDirect(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, tc := range []struct{ irLen, block int }{{1, 4}, {5, 4}, {16, 4}, {37, 8}, {100, 16}} {
		ir := make([]float64, tc.irLen)
		for i := range ir {
			ir[i] = 2*r.Float64() - 1
		}
		x := make([]float64, 4*tc.irLen+3*tc.block)
		for i := range x {
			x[i] = 2*r.Float64() - 1
		}

		c, err := NewConvolver(ir, tc.block)
		if err != nil {
			t.Fatal(err)
		}
		for i := range x {
			got := c.Convolve(x[i])
			want := 0.0
			for k := range ir {
				if j := i - tc.block - k; j >= 0 {
					want += ir[k] * x[j]
				}
			}
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("ir %d block %d sample %d: got %v, want %v", tc.irLen, tc.block, i, got, want)
			}
		}
	}
}

func TestConvolverBlockSize(t *testing.T) {
	for _, n := range []int{0, -4, 3, 12} {
		if _, err := NewConvolver([]float64{1}, n); err == nil {
			t.Errorf("block %d: expected error", n)
		}
	}
}

func BenchmarkConvolver(b *testing.B) {
	ir := DecayingNoise(48000, rand.New(rand.NewSource(1)))
	c, err := NewConvolver(ir, 512)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Convolve(.1)
	}
}
