package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gordonklaus/tiltloop"
)

type scriptCmd struct {
	At   float64
	Name string
	Args []float64
	Line int
}

var scriptArity = map[string]int{
	"record": 1,
	"play":   1,
	"stop":   1,
	"clear":  1,
	"reverb": 1,
	"volume": 1,
	"gain":   2,
	"tilt":   3,
}

func loadScript(path string) ([]scriptCmd, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cmds, err := parseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}

func parseScript(r io.Reader) ([]scriptCmd, error) {
	var cmds []scriptCmd
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: want \"<seconds> <command> [args]\"", line)
		}
		at, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || at < 0 {
			return nil, fmt.Errorf("line %d: bad time %q", line, fields[0])
		}
		name := strings.ToLower(fields[1])
		n, ok := scriptArity[name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", line, fields[1])
		}
		if len(fields)-2 != n {
			return nil, fmt.Errorf("line %d: %s takes %d argument(s)", line, name, n)
		}
		c := scriptCmd{At: at, Name: name, Line: line}
		for _, f := range fields[2:] {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad argument %q", line, f)
			}
			c.Args = append(c.Args, x)
		}
		cmds = append(cmds, c)
	}
	return cmds, s.Err()
}

// apply runs c against the engine.  Refused commands are returned for
// logging; they do not stop the script.
func (c scriptCmd) apply(e *tiltloop.Engine) error {
	i := 0
	if len(c.Args) > 0 {
		i = int(c.Args[0])
	}
	switch c.Name {
	case "record":
		return e.Record(i)
	case "play":
		return e.Play(i)
	case "stop":
		return e.Stop(i)
	case "clear":
		return e.Clear(i)
	case "reverb":
		return e.SetReverbMix(c.Args[0])
	case "volume":
		return e.SetMasterVolume(c.Args[0])
	case "gain":
		return e.SetLoopGain(i, c.Args[1])
	case "tilt":
		e.OnOrientationSample(c.Args[0], c.Args[1], c.Args[2])
		return nil
	}
	return fmt.Errorf("unknown command %q", c.Name)
}
