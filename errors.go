package tiltloop

import (
	"errors"
	"fmt"
)

var (
	ErrEngineNotStarted = errors.New("engine not started")
	ErrNoSuchLooper     = errors.New("no such looper")
	ErrNothingRecorded  = errors.New("nothing recorded")
	ErrInvalidConfig    = errors.New("invalid config")
)

// StartError reports why Engine.Start gave up.  Nothing the failed start
// built is left running.
type StartError struct {
	Stage string // "graph" or "host"
	Err   error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("engine start failed at %s: %v", e.Stage, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }
