package audio

import "math"

type CompressorSettings struct {
	Threshold float64 // dB
	Knee      float64 // dB, 0 is a hard knee
	Ratio     float64
	Attack    float64 // seconds
	Release   float64 // seconds
	Lookahead float64 // seconds
}

// A feed-forward peak compressor.  The detector sees the input Lookahead
// seconds before the gain is applied to it.  Makeup gain is derived from the
// curve so that a full scale input comes out near full scale, which is what
// gives heavy settings their pumping character.
type Compressor struct {
	settings CompressorSettings
	env      *Follower
	delay    *ConstDelay
	makeup   float64
	gain     float64
}

func NewCompressor(s CompressorSettings) *Compressor {
	if s.Ratio < 1 {
		s.Ratio = 1
	}
	return &Compressor{
		settings: s,
		env:      NewFollower(s.Attack, s.Release),
		delay:    NewConstDelay(s.Lookahead),
		gain:     1,
	}
}

func (c *Compressor) InitAudio(p Params) {
	c.env.InitAudio(p)
	c.delay.InitAudio(p)
	c.makeup = -.6 * c.curve(0)
	c.gain = 1
}

func (c *Compressor) Settings() CompressorSettings { return c.settings }

// curve returns the output level in dB for an input level in dB, before
// makeup gain.
func (c *Compressor) curve(db float64) float64 {
	t, k, r := c.settings.Threshold, c.settings.Knee, c.settings.Ratio
	over := db - t
	switch {
	case 2*over < -k:
		return db
	case k > 0 && 2*math.Abs(over) <= k:
		x := over + k/2
		return db + (1/r-1)*x*x/(2*k)
	default:
		return t + over/r
	}
}

// Reduction is the current gain, including makeup, as a linear factor.
func (c *Compressor) Reduction() float64 { return c.gain }

func (c *Compressor) Compress(x float64) float64 {
	level := c.env.Follow(x)
	db := -180.0
	if level > 1e-9 {
		db = 20 * math.Log10(level)
	}
	c.gain = math.Pow(10, (c.curve(db)-db+c.makeup)/20)
	return c.gain * c.delay.Delay(x)
}
