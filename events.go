package tiltloop

// Status is what the presentation layer shows for a looper.
type Status string

const (
	StatusReady     Status = "READY"
	StatusRecording Status = "RECORDING"
	StatusStopped   Status = "STOPPED"
	StatusPlaying   Status = "PLAYING"
)

// An Event is published to subscribers of Engine.Subscribe.
type Event interface {
	isEvent()
}

// StatusEvent follows every transport transition, including the automatic
// stop when a recording fills its buffer.
type StatusEvent struct {
	Looper int
	Status Status
}

// FrameEvent is published once per update tick.
type FrameEvent struct {
	Loopers [NumLoopers]LooperFrame
	Level   float64 // RMS of the output
}

type LooperFrame struct {
	State           State
	PlaybackRate    float64
	Glitch          float64
	Stutter         float64
	RecordedSeconds float64
}

// OrientationEvent carries the raw angles of the latest sample for readout.
type OrientationEvent struct {
	Orientation Orientation
}

func (StatusEvent) isEvent()      {}
func (FrameEvent) isEvent()       {}
func (OrientationEvent) isEvent() {}
