package timer

import "image/color"

// Phase selects which configured duration is counting down.
type Phase int

const (
	PhaseSession Phase = iota
	PhaseBreak
)

// String returns the label shown under the countdown.
func (p Phase) String() string {
	switch p {
	case PhaseBreak:
		return "Break"
	default:
		return "Session"
	}
}

// Other returns the phase entered when the current one runs out.
func (p Phase) Other() Phase {
	if p == PhaseSession {
		return PhaseBreak
	}
	return PhaseSession
}

// RunState reports whether a tick is currently scheduled.
type RunState int

const (
	StateStopped RunState = iota
	StateRunning
)

func (s RunState) String() string {
	if s == StateRunning {
		return "Running"
	}
	return "Stopped"
}

// Duration bounds and defaults, in seconds.
const (
	MinLength  = 60
	MaxLength  = 60 * 60
	LengthStep = 60

	DefaultSessionLength = 25 * 60
	DefaultBreakLength   = 5 * 60
)

// UI constants
const (
	FontSizeTime  float32 = 56.0
	FontSizeLabel float32 = 20.0
	FontSizeValue float32 = 28.0

	// Dimensions
	WindowWidth  = 340
	WindowHeight = 360
	PickerGap    = 8
)

var (
	// SessionColor is the accent used while working.
	SessionColor = color.NRGBA{R: 0xe5, G: 0x4b, B: 0x4b, A: 0xff}
	// BreakColor is the accent used during a break.
	BreakColor = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
)

// PhaseColor returns the accent for a phase.
func PhaseColor(p Phase) color.NRGBA {
	if p == PhaseBreak {
		return BreakColor
	}
	return SessionColor
}

// clampLength keeps a duration within [MinLength, MaxLength].
func clampLength(sec int) int {
	if sec < MinLength {
		return MinLength
	}
	if sec > MaxLength {
		return MaxLength
	}
	return sec
}
