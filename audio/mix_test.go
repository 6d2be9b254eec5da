package audio

import "testing"

type constSource float64

func (c constSource) Render(a Audio) {
	for i := range a {
		a[i] = float64(c)
	}
}

func TestMix(t *testing.T) {
	m := NewMix(constSource(1), constSource(.5), constSource(-.25))
	Init(m, Params{SampleRate: 100, BlockSize: 4})
	if m.Len() != 3 {
		t.Fatalf("len %d", m.Len())
	}

	// a block larger than configured grows the scratch buffer
	a := make(Audio, 6)
	for i := range a {
		a[i] = 9
	}
	m.Render(a)
	for i, x := range a {
		if x != 1.25 {
			t.Errorf("sample %d = %v, want 1.25", i, x)
		}
	}
}

func TestGain(t *testing.T) {
	g := NewGain(1)
	a := Audio{1, 2, 3}
	g.Apply(a)
	if a[2] != 3 {
		t.Error("unity gain changed the signal")
	}
	g.Set(.5)
	if g.Value() != .5 {
		t.Errorf("value %v", g.Value())
	}
	g.Apply(a)
	if a[0] != .5 || a[1] != 1 || a[2] != 1.5 {
		t.Errorf("got %v", a)
	}
}

func TestAudioFloat32(t *testing.T) {
	var a Audio
	a.InitAudio(Params{SampleRate: 1, BlockSize: 3})
	a.AddX(a, .5).MulX(a, 2)
	out := make([]float32, 3)
	a.Float32(out)
	for _, x := range out {
		if x != 1 {
			t.Fatalf("got %v", out)
		}
	}
}
