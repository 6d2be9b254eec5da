package audio

import (
	"math"
	"path/filepath"
	"testing"
)

func TestWAVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.wav")
	in := []float32{0, .5, -.5, 1, -1, .25, 2, -2}
	if err := WriteWAV(path, in, 8000); err != nil {
		t.Fatal(err)
	}
	out, sr, err := ReadWAV(path)
	if err != nil {
		t.Fatal(err)
	}
	if sr != 8000 {
		t.Errorf("sample rate %d, want 8000", sr)
	}
	if len(out) != len(in) {
		t.Fatalf("read %d samples, want %d", len(out), len(in))
	}
	for i, x := range in {
		want := math.Max(-1, math.Min(1, float64(x)))
		if math.Abs(float64(out[i])-want) > 1./16384 {
			t.Errorf("sample %d: got %v, want %v", i, out[i], want)
		}
	}
}

func TestReadWAVMissing(t *testing.T) {
	if _, _, err := ReadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error")
	}
}
