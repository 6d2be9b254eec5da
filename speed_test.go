package tiltloop

import (
	"math"
	"testing"
)

func TestMapToSpeed(t *testing.T) {
	for _, tc := range []struct{ x, want float64 }{
		{math.Inf(-1), -4},
		{-1, -4},
		{0, -4},
		{.09, -2},
		{.49, -.25},
		{.5, .25},
		{.7, 1},
		{.999, 4},
		{1, 4},
		{2, 4},
		{math.Inf(1), 4},
		{math.NaN(), -4},
	} {
		if got := MapToSpeed(tc.x); got != tc.want {
			t.Errorf("MapToSpeed(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestMapToSpeedTotal(t *testing.T) {
	seen := map[float64]bool{}
	for i := 0; i <= 12000; i++ {
		s := MapToSpeed(float64(i) / 12000)
		if s == 0 {
			t.Fatalf("x=%v mapped to zero speed", float64(i)/12000)
		}
		seen[s] = true
	}
	if len(seen) != len(Speeds) {
		t.Errorf("reached %d speeds, want %d", len(seen), len(Speeds))
	}
}
