package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gordonklaus/tiltloop"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltloop",
	Short: "Tilt-controlled drone and four channel live looper",
	Long: `tiltloop plays a breathing minor seventh drone and lets you record up
to four loops from the default input, whose playback speeds are set by
device tilt.

Orientation comes from a CSV trace (seconds,gamma,beta,alpha), from the
keyboard, or from a slow random wander.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play live through the sound card",
	Long: `Open the sound card and play live.

Keys:
  1-4   select looper        r p s c   record, play, stop, clear
  [ ]   reverb -/+ 10%       - =       volume -/+
  h l   tilt left/right      j k       tilt back/forward
  u i   rotate               q         quit

Examples:
  tiltloop run
  tiltloop run --backend oto --wander
  tiltloop run --trace walk.csv --reverb 30`,
	RunE: runLive,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render to a WAV file without a sound card",
	Long: `Render the engine offline, driven by a timed command script.

Script lines are "<seconds> <command> [args]", with loopers numbered 0-3:
  record i | play i | stop i | clear i
  reverb percent | volume v | gain i v | tilt gamma beta alpha

Examples:
  tiltloop render -o drone.wav --seconds 20
  tiltloop render -i voice.wav -s loops.txt -o out.wav --seconds 40`,
	RunE: runRender,
}

var (
	sampleRate   float64
	blockSize    int
	frameRate    float64
	loopSeconds  float64
	droneRoot    float64
	reverbMix    float64
	masterVolume float64
	reverbSeed   int64
	logLevel     string

	tracePath string
	wander    bool

	backend string
	noInput bool

	inputPath  string
	outputPath string
	scriptPath string
	seconds    float64
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)

	def := tiltloop.DefaultConfig()
	for _, c := range []*cobra.Command{runCmd, renderCmd} {
		c.Flags().Float64Var(&sampleRate, "sample-rate", def.SampleRate, "Sample rate in Hz")
		c.Flags().IntVar(&blockSize, "block", def.BlockSize, "Frames per audio block")
		c.Flags().Float64Var(&frameRate, "frame-rate", def.FrameRate, "Update loop rate in Hz")
		c.Flags().Float64Var(&loopSeconds, "loop-seconds", def.LoopSeconds, "Recording capacity per looper")
		c.Flags().Float64Var(&droneRoot, "root", def.DroneRoot, "Drone root frequency in Hz")
		c.Flags().Float64Var(&reverbMix, "reverb", 0, "Reverb wet mix in percent")
		c.Flags().Float64Var(&masterVolume, "volume", def.MasterVolume, "Master volume")
		c.Flags().Int64Var(&reverbSeed, "seed", 0, "Reverb noise seed (0 picks one)")
		c.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
		c.Flags().StringVarP(&tracePath, "trace", "t", "", "Orientation trace CSV (seconds,gamma,beta,alpha)")
		c.Flags().BoolVarP(&wander, "wander", "w", false, "Let the orientation drift on its own")
	}

	runCmd.Flags().StringVarP(&backend, "backend", "b", "portaudio", "Audio backend (portaudio, oto)")
	runCmd.Flags().BoolVar(&noInput, "no-input", false, "Open output only (loopers record silence)")

	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "WAV file fed to the loopers as live input")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "tiltloop.wav", "Output WAV file")
	renderCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Timed command script")
	renderCmd.Flags().Float64Var(&seconds, "seconds", 10, "Length to render")
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", logLevel)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func configFromFlags(logger *slog.Logger) tiltloop.Config {
	cfg := tiltloop.DefaultConfig()
	cfg.SampleRate = sampleRate
	cfg.BlockSize = blockSize
	cfg.FrameRate = frameRate
	cfg.LoopSeconds = loopSeconds
	cfg.DroneRoot = droneRoot
	cfg.MasterVolume = masterVolume
	cfg.ReverbSeed = reverbSeed
	cfg.Logger = logger
	return cfg
}

// orientationSource yields the orientation at time t seconds, or false once
// it has nothing more to say.
type orientationSource interface {
	At(t float64) (tiltloop.Orientation, bool)
}

func orientationFromFlags() (orientationSource, error) {
	switch {
	case tracePath != "" && wander:
		return nil, fmt.Errorf("--trace and --wander are exclusive")
	case tracePath != "":
		return loadTrace(tracePath)
	case wander:
		return newWanderer(frameRate, 0), nil
	}
	return nil, nil
}
