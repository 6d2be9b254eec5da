package audio

import "math"

// Follower tracks the peak level of a signal with separate attack and
// release times, each the time taken to cover 99% of a step.
type Follower struct {
	Params                  Params
	attackTime, releaseTime float64
	up, down                float64
	x                       float64
}

func NewFollower(attackTime, releaseTime float64) *Follower {
	return &Follower{attackTime: attackTime, releaseTime: releaseTime}
}

func (f *Follower) InitAudio(p Params) {
	f.Params = p
	f.SetAttackTime(f.attackTime)
	f.SetReleaseTime(f.releaseTime)
}

func (f *Follower) SetAttackTime(t float64) {
	f.attackTime = t
	f.up = coef(f.Params.SampleRate, t)
}

func (f *Follower) SetReleaseTime(t float64) {
	f.releaseTime = t
	f.down = coef(f.Params.SampleRate, t)
}

func coef(sampleRate, t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(.01, 1/(sampleRate*t))
}

func (f *Follower) Follow(x float64) float64 {
	x = math.Abs(x)
	if x > f.x {
		f.x = x + (f.x-x)*f.up
	} else {
		f.x = x + (f.x-x)*f.down
	}
	return f.x
}

func (f *Follower) Level() float64 { return f.x }
