package audio

import "testing"

func TestControl(t *testing.T) {
	c, err := NewControl([]ControlPoint{{0, 0}, {1, 10}, {2, 10}, {2, -5}, {4, 5}})
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct{ t, want float64 }{
		{-1, 0},
		{0, 0},
		{.5, 5},
		{1.5, 10},
		{2, -5},
		{3, 0},
		{4, 5},
		{10, 5},
	} {
		if got := c.At(tc.t); got != tc.want {
			t.Errorf("At(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
	if c.Done(3.9) || !c.Done(4) {
		t.Error("wrong Done")
	}
}

func TestControlOrder(t *testing.T) {
	if _, err := NewControl([]ControlPoint{{1, 0}, {0, 1}}); err == nil {
		t.Error("expected error for points out of order")
	}
	c, err := NewControl(nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.At(1) != 0 || !c.Done(0) {
		t.Error("empty control should be zero and done")
	}
}
