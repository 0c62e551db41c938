// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command-loop
// centralizes state changes so every user action reaches the controller in
// the order it was issued.
package control

import "PomoTimer/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdStop
	CmdToggle
	CmdReset
	CmdAdjust
)

func (t CommandType) String() string {
	switch t {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdToggle:
		return "toggle"
	case CmdReset:
		return "reset"
	case CmdAdjust:
		return "adjust"
	}
	return "unknown"
}

// Command is the message sent from UI to AppManager.commandLoop. The
// optional Reply channel can be used by the commandLoop to confirm
// completion back to the sender (useful for keeping UI state in sync).
type Command struct {
	Type CommandType

	// Target and DeltaMinutes are only read for CmdAdjust.
	Target       timer.Phase
	DeltaMinutes int

	Reply chan error // optional reply channel
}

// Adjust builds a CmdAdjust for the given phase.
func Adjust(target timer.Phase, deltaMinutes int) Command {
	return Command{Type: CmdAdjust, Target: target, DeltaMinutes: deltaMinutes}
}

// Apply runs the command against c.
func (cmd Command) Apply(c *timer.Controller) {
	switch cmd.Type {
	case CmdStart:
		c.Start()
	case CmdStop:
		c.Stop()
	case CmdToggle:
		c.ToggleStartStop()
	case CmdReset:
		c.Reset()
	case CmdAdjust:
		c.AdjustDuration(cmd.Target, cmd.DeltaMinutes)
	}
}
