package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gordonklaus/tiltloop"
	"github.com/gordonklaus/tiltloop/audio"
	"github.com/spf13/cobra"
)

func runLive(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	if frameRate <= 0 {
		return fmt.Errorf("--frame-rate must be positive")
	}
	source, err := orientationFromFlags()
	if err != nil {
		return err
	}

	var host audio.Host
	switch backend {
	case "portaudio":
		host = audio.NewPortAudioHost(!noInput)
	case "oto":
		if !noInput {
			logger.Warn("oto backend has no input; loopers will record silence")
		}
		host = audio.NewOtoHost()
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	eng, err := tiltloop.NewEngine(configFromFlags(logger), host)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	disp := newDisplay(os.Stdout)
	eng.Subscribe(disp.handle)

	if err := eng.Start(ctx); err != nil {
		if errors.Is(err, audio.ErrPermissionDenied) {
			fmt.Fprintln(os.Stderr, "Could not open the microphone or sound card. Check that it is connected and that tiltloop may use it, or try --no-input.")
		}
		return err
	}
	defer eng.Close()

	if reverbMix != 0 {
		if err := eng.SetReverbMix(reverbMix); err != nil {
			return err
		}
		disp.setReverb(reverbMix)
	}

	if source != nil {
		go followOrientation(ctx, eng, source)
	}

	keys := newKeyboard(eng, disp, logger, cancel)
	keys.reverb = reverbMix
	if err := keys.Start(); err != nil {
		logger.Warn("keyboard unavailable", "err", err)
	}
	defer keys.Stop()

	<-ctx.Done()
	return nil
}

// followOrientation feeds source to the engine at the frame rate until ctx
// is done or the source runs out.
func followOrientation(ctx context.Context, eng *tiltloop.Engine, source orientationSource) {
	t := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	defer t.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			o, ok := source.At(now.Sub(start).Seconds())
			eng.OnOrientationSample(o.Gamma, o.Beta, o.Alpha)
			if !ok {
				return
			}
		}
	}
}
