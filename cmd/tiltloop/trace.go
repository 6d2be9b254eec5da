package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gordonklaus/tiltloop"
	"github.com/gordonklaus/tiltloop/audio"
)

// trace replays recorded orientation, interpolating linearly between rows.
type trace struct {
	gamma, beta, alpha *audio.Control
}

func loadTrace(path string) (*trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := parseTrace(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseTrace(r io.Reader) (*trace, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var g, b, a []audio.ControlPoint
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && !isNumber(rec[0]) {
			continue // header
		}
		var v [4]float64
		for i, s := range rec {
			if v[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
		}
		g = append(g, audio.ControlPoint{Time: v[0], Value: v[1]})
		b = append(b, audio.ControlPoint{Time: v[0], Value: v[2]})
		a = append(a, audio.ControlPoint{Time: v[0], Value: v[3]})
	}
	if len(g) == 0 {
		return nil, fmt.Errorf("no samples")
	}

	t := &trace{}
	var err error
	if t.gamma, err = audio.NewControl(g); err != nil {
		return nil, err
	}
	if t.beta, err = audio.NewControl(b); err != nil {
		return nil, err
	}
	if t.alpha, err = audio.NewControl(a); err != nil {
		return nil, err
	}
	return t, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func (t *trace) At(s float64) (tiltloop.Orientation, bool) {
	o := tiltloop.Orientation{Gamma: t.gamma.At(s), Beta: t.beta.At(s), Alpha: t.alpha.At(s)}
	return o, !t.gamma.Done(s)
}
