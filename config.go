package tiltloop

import (
	"fmt"
	"log/slog"

	"github.com/gordonklaus/tiltloop/audio"
)

// NumLoopers is the fixed number of loop channels.
const NumLoopers = 4

type Config struct {
	SampleRate float64
	BlockSize  int

	// LoopSeconds is the capacity of each looper's recording buffer.
	LoopSeconds float64

	// FrameRate paces the update loop.  Zero or less leaves frames to the
	// caller, who drives them with Engine.Tick.
	FrameRate float64

	GlitchSmoothing  float64
	StutterSmoothing float64
	MaxStutterHz     float64

	DroneRoot float64

	ReverbSeconds float64
	ReverbSeed    int64

	MasterVolume float64
	LoopGain     float64
	Compressor   audio.CompressorSettings

	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		SampleRate:       48000,
		BlockSize:        512,
		LoopSeconds:      30,
		FrameRate:        60,
		GlitchSmoothing:  .1,
		StutterSmoothing: .05,
		MaxStutterHz:     16,
		DroneRoot:        110,
		ReverbSeconds:    3,
		MasterVolume:     .8,
		LoopGain:         1,
		Compressor: audio.CompressorSettings{
			Threshold: -50,
			Knee:      0,
			Ratio:     20,
			Attack:    .003,
			Release:   .1,
			Lookahead: .006,
		},
	}
}

func (c Config) Validate() error {
	if err := c.params().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch {
	case c.LoopSeconds <= 0:
		return fmt.Errorf("%w: loop length %v s", ErrInvalidConfig, c.LoopSeconds)
	case !(c.GlitchSmoothing > 0 && c.GlitchSmoothing <= 1):
		return fmt.Errorf("%w: glitch smoothing %v outside (0, 1]", ErrInvalidConfig, c.GlitchSmoothing)
	case !(c.StutterSmoothing > 0 && c.StutterSmoothing <= 1):
		return fmt.Errorf("%w: stutter smoothing %v outside (0, 1]", ErrInvalidConfig, c.StutterSmoothing)
	case c.DroneRoot <= 0 || c.DroneRoot >= c.SampleRate/2:
		return fmt.Errorf("%w: drone root %v Hz", ErrInvalidConfig, c.DroneRoot)
	case c.ReverbSeconds <= 0:
		return fmt.Errorf("%w: reverb length %v s", ErrInvalidConfig, c.ReverbSeconds)
	case c.Compressor.Ratio < 1:
		return fmt.Errorf("%w: compressor ratio %v", ErrInvalidConfig, c.Compressor.Ratio)
	}
	return nil
}

func (c Config) params() audio.Params {
	return audio.Params{SampleRate: c.SampleRate, BlockSize: c.BlockSize}
}

// capacity is the recording buffer length in samples.
func (c Config) capacity() int {
	return int(c.SampleRate * c.LoopSeconds)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
