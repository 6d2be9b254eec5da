package tiltloop

import (
	"fmt"

	"github.com/gordonklaus/tiltloop/audio"
)

const (
	NodeDrone       = "drone"
	NodeMaster      = "master"
	NodeReverb      = "reverb"
	NodeWet         = "wet"
	NodeDry         = "dry"
	NodeCompressor  = "compressor"
	NodeDestination = "destination"
)

func LoopNode(i int) string { return fmt.Sprintf("loop%d", i) }

type Edge struct {
	From, To string
}

// Graph is the fixed signal path:
//
//	drone, loop0..3 -> master -> reverb -> wet -> compressor -> destination
//	                          -> dry ----------^
//
// Its topology is set by newGraph; afterwards only the gains and the
// loopers' playback rates change.
type Graph struct {
	Master     *audio.Gain
	Compressor *audio.Compressor
	Reverb     *audio.Reverb
	Wet, Dry   *audio.Gain
	Drone      *Drone
	LoopGains  [NumLoopers]*audio.Gain
	Mix        *audio.Mix
	Meter      *audio.AmpMeter
	Bus        audio.Audio

	edges []Edge
}

type loopChannel struct {
	src  audio.Source
	gain *audio.Gain
}

func (c loopChannel) Render(a audio.Audio) {
	c.src.Render(a)
	c.gain.Apply(a)
}

func newGraph(cfg Config, loops [NumLoopers]audio.Source) (*Graph, error) {
	g := &Graph{}
	connect := func(from, to string) { g.edges = append(g.edges, Edge{from, to}) }

	g.Master = audio.NewGain(cfg.MasterVolume)
	g.Compressor = audio.NewCompressor(cfg.Compressor)
	connect(NodeCompressor, NodeDestination)
	g.Reverb = audio.NewReverb(cfg.ReverbSeconds, cfg.ReverbSeed)
	g.Wet = audio.NewGain(0)
	g.Dry = audio.NewGain(1)
	connect(NodeMaster, NodeReverb)
	connect(NodeReverb, NodeWet)
	connect(NodeMaster, NodeDry)
	connect(NodeWet, NodeCompressor)
	connect(NodeDry, NodeCompressor)

	g.Drone = NewDrone(cfg.DroneRoot)
	sources := []audio.Source{g.Drone}
	connect(NodeDrone, NodeMaster)
	for i, l := range loops {
		g.LoopGains[i] = audio.NewGain(cfg.LoopGain)
		sources = append(sources, loopChannel{l, g.LoopGains[i]})
		connect(LoopNode(i), NodeMaster)
	}
	g.Mix = audio.NewMix(sources...)
	g.Meter = audio.NewAmpMeter(.3)

	if err := audio.Init(g, cfg.params()); err != nil {
		return nil, err
	}
	return g, nil
}

// Edges lists every connection in the order it was made.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// SetReverbMix splits the master bus between the wet and dry paths; percent
// is clamped to [0, 100].
func (g *Graph) SetReverbMix(percent float64) {
	wet := clamp01(percent / 100)
	g.Wet.Set(wet)
	g.Dry.Set(1 - wet)
}

func (g *Graph) Render(out []float32) {
	bus := g.Bus.Block(len(out))
	g.Mix.Render(bus)
	g.Master.Apply(bus)
	wet, dry := g.Wet.Value(), g.Dry.Value()
	for i, x := range bus {
		bus[i] = g.Compressor.Compress(g.Reverb.Reverb(x)*wet + x*dry)
	}
	g.Meter.Measure(bus)
	bus.Float32(out)
}
