package audio

import (
	"fmt"
	"sort"
)

// Control is a piecewise linear curve through a list of points.  Two points
// with the same time mark a discontinuity.
type Control struct {
	points []ControlPoint
}

type ControlPoint struct {
	Time, Value float64
}

func NewControl(points []ControlPoint) (*Control, error) {
	for i := range points {
		if i > 0 && points[i].Time < points[i-1].Time {
			return nil, fmt.Errorf("control points out of order at %d: %v after %v", i, points[i].Time, points[i-1].Time)
		}
	}
	return &Control{points: points}, nil
}

// At evaluates the curve at time t, holding the end values outside it.
func (c *Control) At(t float64) float64 {
	if len(c.points) == 0 {
		return 0
	}
	// first point strictly after t
	i := sort.Search(len(c.points), func(i int) bool { return c.points[i].Time > t })
	if i == 0 {
		return c.points[0].Value
	}
	if i == len(c.points) {
		return c.points[i-1].Value
	}
	p, q := c.points[i-1], c.points[i]
	return p.Value + (q.Value-p.Value)*(t-p.Time)/(q.Time-p.Time)
}

// Done reports whether t is past the last point.
func (c *Control) Done(t float64) bool {
	return len(c.points) == 0 || t >= c.points[len(c.points)-1].Time
}
