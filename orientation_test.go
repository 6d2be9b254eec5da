package tiltloop

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		o    Orientation
		want Normalized
	}{
		{Orientation{0, 0, 0}, Normalized{.5, .5, 0}},
		{Orientation{-90, -180, 0}, Normalized{0, 0, 0}},
		{Orientation{90, 180, 360}, Normalized{1, 1, 1}},
		{Orientation{45, 90, 90}, Normalized{.75, .75, .25}},
		{Orientation{200, -400, -10}, Normalized{1, 0, 0}},
		{Orientation{math.NaN(), 0, 0}, Normalized{0, .5, 0}},
	} {
		if got := tc.o.Normalize(); got != tc.want {
			t.Errorf("%v.Normalize() = %v, want %v", tc.o, got, tc.want)
		}
	}
}

func TestMapperFanOut(t *testing.T) {
	var loopers []*Looper
	for i := 0; i < NumLoopers; i++ {
		loopers = append(loopers, newLooper(i, 16, 1, 1))
	}
	Mapper{MaxStutterHz: 16}.Apply(Orientation{Gamma: 0, Beta: -180, Alpha: 0}, loopers)

	want := [NumLoopers]struct{ glitch, speed, stutter float64 }{
		{.5, -4, 0},
		{0, -4, 8},
		{0, .25, 0},
		{.25, -4, 8},
	}
	for i, l := range loopers {
		f := l.Tick()
		if f.Glitch != want[i].glitch || f.PlaybackRate != want[i].speed || f.Stutter != want[i].stutter {
			t.Errorf("looper %d: glitch %v speed %v stutter %v, want %v", i, f.Glitch, f.PlaybackRate, f.Stutter, want[i])
		}
	}
}

func TestRouteDistinct(t *testing.T) {
	n := Normalized{G: .1, B: .5, A: .9}
	for i := 0; i < NumLoopers; i++ {
		for j := i + 1; j < NumLoopers; j++ {
			if Route(i, n) == Route(j, n) {
				t.Errorf("loopers %d and %d read the same targets", i, j)
			}
		}
	}
}
