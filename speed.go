package tiltloop

import "math"

// Speeds are the playback rates a looper can be set to, slowest reverse
// first.  There is no zero: the middle of the range jumps from slow reverse
// straight to slow forward.
var Speeds = [...]float64{-4, -2, -1.5, -1, -.5, -.25, .25, .5, 1, 1.5, 2, 4}

// MapToSpeed buckets x in [0, 1) into Speeds.  Values outside the range,
// including 1 and NaN, land in the nearest end bucket.
func MapToSpeed(x float64) float64 {
	i := 0
	if x > 0 {
		i = int(math.Min(math.Floor(x*float64(len(Speeds))), float64(len(Speeds)-1)))
	}
	return Speeds[i]
}
