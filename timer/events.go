package timer

import "time"

// EventType defines the type of controller event.
type EventType string

const (
	// EventChanged is emitted after any state mutation.
	EventChanged EventType = "changed"
	// EventPhaseComplete is emitted when TimeLeft runs out and the phase flips.
	EventPhaseComplete EventType = "phase_complete"
)

// Event carries a snapshot taken right after the mutation that caused it.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
