package audio

import "testing"

func TestInit(t *testing.T) {
	p := Params{SampleRate: 48000, BlockSize: 64}

	var i audioIniter
	if err := Init(i, p); err == nil {
		t.Error("expected error for a value whose pointer implements Initer")
	}
	if i.inited {
		t.Error("expected not inited")
	}

	if err := Init(&i, p); err != nil {
		t.Fatal(err)
	}
	if !i.inited {
		t.Error("expected inited")
	}
	if i.p != p {
		t.Errorf("got params %v, want %v", i.p, p)
	}
}

func TestInitWalk(t *testing.T) {
	var x struct {
		A     audioIniter
		B     *audioIniter
		C     []*audioIniter
		D     [2]audioIniter
		E     Source
		F     *audioIniter // nil
		skip  audioIniter
		Block Audio
	}
	x.B = new(audioIniter)
	x.C = []*audioIniter{{}, {}}
	src := &initSource{}
	x.E = src

	if err := Init(&x, Params{SampleRate: 1000, BlockSize: 16}); err != nil {
		t.Fatal(err)
	}
	for name, i := range map[string]*audioIniter{"A": &x.A, "B": x.B, "C0": x.C[0], "C1": x.C[1], "D0": &x.D[0], "D1": &x.D[1]} {
		if !i.inited {
			t.Errorf("%s not inited", name)
		}
	}
	if !src.inited {
		t.Error("interface field not inited")
	}
	if x.skip.inited {
		t.Error("unexported field inited")
	}
	if len(x.Block) != 16 {
		t.Errorf("block has length %d, want 16", len(x.Block))
	}
}

func TestInitInvalidParams(t *testing.T) {
	var i audioIniter
	for _, p := range []Params{{}, {SampleRate: 48000}, {BlockSize: 64}, {SampleRate: -1, BlockSize: 64}} {
		if err := Init(&i, p); err == nil {
			t.Errorf("%v: expected error", p)
		}
	}
	if i.inited {
		t.Error("expected not inited")
	}
}

func TestMustInitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var i audioIniter
	MustInit(&i, Params{})
}

type audioIniter struct {
	inited bool
	p      Params
}

func (i *audioIniter) InitAudio(p Params) { i.inited, i.p = true, p }

type initSource struct {
	inited bool
}

func (s *initSource) InitAudio(Params) { s.inited = true }
func (s *initSource) Render(Audio)     {}
