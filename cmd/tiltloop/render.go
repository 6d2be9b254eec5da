package main

import (
	"context"
	"fmt"

	"github.com/gordonklaus/tiltloop"
	"github.com/gordonklaus/tiltloop/audio"
	"github.com/spf13/cobra"
)

func runRender(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	if seconds <= 0 {
		return fmt.Errorf("--seconds must be positive")
	}
	if frameRate <= 0 {
		return fmt.Errorf("--frame-rate must be positive")
	}
	source, err := orientationFromFlags()
	if err != nil {
		return err
	}
	var script []scriptCmd
	if scriptPath != "" {
		if script, err = loadScript(scriptPath); err != nil {
			return err
		}
	}

	cfg := configFromFlags(logger)
	cfg.FrameRate = 0 // ticks are driven by the render clock below
	n := int(seconds * cfg.SampleRate)

	var in []float32
	if inputPath != "" {
		samples, sr, err := audio.ReadWAV(inputPath)
		if err != nil {
			return err
		}
		if float64(sr) != cfg.SampleRate {
			return fmt.Errorf("%s: sample rate %d does not match --sample-rate %v", inputPath, sr, cfg.SampleRate)
		}
		in = make([]float32, n)
		copy(in, samples)
	}

	host := &audio.OfflineHost{}
	eng, err := tiltloop.NewEngine(cfg, host)
	if err != nil {
		return err
	}

	var events audio.EventDelay
	audio.MustInit(&events, audio.Params{SampleRate: cfg.SampleRate, BlockSize: cfg.BlockSize})
	for _, c := range script {
		c := c
		events.Delay(c.At, func() {
			if err := c.apply(eng); err != nil {
				logger.Debug("script command refused", "line", c.Line, "cmd", c.Name, "err", err)
			}
		})
	}

	frames := newFrameClock(cfg.SampleRate, frameRate)
	host.BeforeBlock = func(m int) {
		events.Advance(m)
		frames.advance(m, func(t float64) {
			if source != nil {
				o, _ := source.At(t)
				eng.OnOrientationSample(o.Gamma, o.Beta, o.Alpha)
			}
			eng.Tick()
		})
	}

	if err := eng.Start(context.Background()); err != nil {
		return err
	}
	if reverbMix != 0 {
		if err := eng.SetReverbMix(reverbMix); err != nil {
			return err
		}
	}

	var out []float32
	if in != nil {
		out = host.Process(in)
	} else {
		out = host.Run(n)
	}
	if err := eng.Close(); err != nil {
		return err
	}

	if err := audio.WriteWAV(outputPath, out, int(cfg.SampleRate)); err != nil {
		return err
	}
	logger.Info("rendered", "path", outputPath, "seconds", seconds, "commands", len(script))
	return nil
}

// frameClock counts frames of sample time for the update loop.
type frameClock struct {
	sampleRate float64
	every      int
	since      int
	frames     int
}

func newFrameClock(sampleRate, frameRate float64) *frameClock {
	return &frameClock{sampleRate: sampleRate, every: max(1, int(sampleRate/frameRate))}
}

// advance moves the clock on by n samples and calls tick, with the frame's
// time in seconds, for every frame boundary crossed.
func (c *frameClock) advance(n int, tick func(t float64)) {
	for c.since += n; c.since >= c.every; c.since -= c.every {
		c.frames++
		tick(float64(c.frames*c.every) / c.sampleRate)
	}
}
