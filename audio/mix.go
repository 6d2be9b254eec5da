package audio

// A Source renders one block of audio into a.
type Source interface {
	Render(a Audio)
}

// Mix sums a fixed set of sources at unity gain.  The sources are
// initialized by their owner, not by the Mix.
type Mix struct {
	sources []Source
	tmp     Audio
}

func NewMix(sources ...Source) *Mix {
	return &Mix{sources: sources}
}

func (m *Mix) InitAudio(p Params) { m.tmp.InitAudio(p) }

func (m *Mix) Len() int { return len(m.sources) }

func (m *Mix) Render(a Audio) {
	a.Zero()
	tmp := m.tmp.Block(len(a))
	for _, s := range m.sources {
		s.Render(tmp)
		a.Add(a, tmp)
	}
}
