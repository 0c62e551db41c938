// Package timer contains the domain logic for the Pomodoro countdown: the
// Session/Break phases, the configured lengths and the Controller state
// machine that owns the one tick handle.
//
// Maintenance notes:
//   - All mutable fields are guarded by mu. The tick runs on its own
//     goroutine and user commands arrive from the application command loop,
//     so every mutation goes through a *Locked helper.
//   - A tick is only honoured if its generation matches the controller's
//     current generation. Stop, Reset and Close bump the generation, which
//     makes any tick already in flight a no-op.
//   - TimeLeft is never assigned directly by the public operations. They
//     call commitLocked, which re-derives TimeLeft when the phase or the
//     active phase's length changed.
package timer

import (
	"context"
	"log"
	"sync"
	"time"
)

// Alerter is the audible cue played when a phase runs out.
type Alerter interface {
	Play() error
	Rewind() error
}

// Options contains runtime options for the Controller.
type Options struct {
	TickInterval time.Duration
	Clock        Clock
}

// Snapshot is a coherent copy of the controller state for display.
type Snapshot struct {
	Phase         Phase
	State         RunState
	TimeLeft      int
	SessionLength int
	BreakLength   int
}

// Running reports whether the countdown is active.
func (s Snapshot) Running() bool {
	return s.State == StateRunning
}

// Length returns the configured length of the given phase.
func (s Snapshot) Length(p Phase) int {
	if p == PhaseBreak {
		return s.BreakLength
	}
	return s.SessionLength
}

// Controller owns all Pomodoro state.
type Controller struct {
	mu            sync.Mutex
	phase         Phase
	sessionLength int
	breakLength   int
	timeLeft      int

	// tick handle: non-nil cancel means running
	cancel   context.CancelFunc
	gen      uint64
	lastTick time.Time
	carry    time.Duration

	alert   Alerter
	options Options
	events  []chan Event
	closed  bool
}

// NewController creates a stopped controller in the Session phase with the
// default lengths.
func NewController(alert Alerter, options Options) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	c := &Controller{alert: alert, options: options}
	c.restoreDefaultsLocked()
	return c
}

func (c *Controller) restoreDefaultsLocked() {
	c.phase = PhaseSession
	c.sessionLength = DefaultSessionLength
	c.breakLength = DefaultBreakLength
	c.timeLeft = DefaultSessionLength
}

func (c *Controller) activeLengthLocked() int {
	if c.phase == PhaseBreak {
		return c.breakLength
	}
	return c.sessionLength
}

// commitLocked applies mutate and then re-derives TimeLeft if the phase or
// the active phase's length changed.
func (c *Controller) commitLocked(mutate func()) {
	prevPhase := c.phase
	prevLength := c.activeLengthLocked()
	mutate()
	if c.phase != prevPhase || c.activeLengthLocked() != prevLength {
		c.timeLeft = c.activeLengthLocked()
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	state := StateStopped
	if c.cancel != nil {
		state = StateRunning
	}
	return Snapshot{
		Phase:         c.phase,
		State:         state,
		TimeLeft:      c.timeLeft,
		SessionLength: c.sessionLength,
		BreakLength:   c.breakLength,
	}
}

// Snapshot returns the current state in a thread-safe manner.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// AdjustDuration changes the length of target by deltaMinutes, clamped to
// [MinLength, MaxLength].
func (c *Controller) AdjustDuration(target Phase, deltaMinutes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || deltaMinutes == 0 {
		return
	}
	c.commitLocked(func() {
		delta := deltaMinutes * LengthStep
		if target == PhaseBreak {
			c.breakLength = clampLength(c.breakLength + delta)
		} else {
			c.sessionLength = clampLength(c.sessionLength + delta)
		}
	})
	c.emitLocked(EventChanged)
}

// Start begins the repeating tick. It is a no-op if already running.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.closed || c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	gen := c.gen
	c.lastTick = c.options.Clock.Now()
	c.carry = 0
	ticker := c.options.Clock.NewTicker(c.options.TickInterval)
	c.emitLocked(EventChanged)
	c.mu.Unlock()

	go c.run(ctx, gen, ticker)
}

// Stop cancels the tick. It is a no-op if already stopped.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.releaseLocked() {
		return
	}
	c.emitLocked(EventChanged)
}

// ToggleStartStop starts a stopped controller and stops a running one.
func (c *Controller) ToggleStartStop() {
	if c.Snapshot().Running() {
		c.Stop()
		return
	}
	c.Start()
}

// Reset stops the tick, restores the default lengths and the Session phase,
// and rewinds the alert.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.releaseLocked()
	c.restoreDefaultsLocked()
	c.emitLocked(EventChanged)
	alert := c.alert
	c.mu.Unlock()

	if alert != nil {
		if err := alert.Rewind(); err != nil {
			log.Printf("alert rewind failed: %v", err)
		}
	}
}

// Close cancels any tick and closes all subscriber channels. The controller
// ignores further commands.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.releaseLocked()
	events := c.events
	c.events = nil
	c.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// releaseLocked drops the tick handle. It reports whether one was held.
func (c *Controller) releaseLocked() bool {
	if c.cancel == nil {
		return false
	}
	c.cancel()
	c.cancel = nil
	c.gen++
	c.carry = 0
	return true
}

// Subscribe registers a new observer channel.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch
	}
	c.events = append(c.events, ch)
	return ch
}

func (c *Controller) run(ctx context.Context, gen uint64, ticker Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C():
			c.tick(gen, now)
		}
	}
}

// tick advances TimeLeft by the whole seconds elapsed since the previous
// tick. Sub-second remainders carry over to the next tick.
func (c *Controller) tick(gen uint64, now time.Time) {
	c.mu.Lock()
	if c.cancel == nil || gen != c.gen {
		c.mu.Unlock()
		return
	}

	c.carry += now.Sub(c.lastTick)
	c.lastTick = now
	if c.carry < 0 {
		c.carry = 0
	}
	steps := int(c.carry / time.Second)
	c.carry -= time.Duration(steps) * time.Second
	if steps == 0 {
		c.mu.Unlock()
		return
	}

	flipped := false
	for i := 0; i < steps; i++ {
		if c.stepLocked() {
			flipped = true
			c.emitLocked(EventPhaseComplete)
		}
	}
	c.emitLocked(EventChanged)
	alert := c.alert
	c.mu.Unlock()

	if flipped && alert != nil {
		if err := alert.Play(); err != nil {
			log.Printf("alert playback failed: %v", err)
		}
	}
}

// stepLocked processes one second of countdown. It reports whether the
// phase flipped.
func (c *Controller) stepLocked() bool {
	next := c.timeLeft - 1
	if next > 0 {
		c.timeLeft = next
		return false
	}
	c.commitLocked(func() {
		c.phase = c.phase.Other()
	})
	return true
}

func (c *Controller) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: c.snapshotLocked(),
		At:       c.options.Clock.Now(),
	}
	for _, ch := range c.events {
		select {
		case ch <- event:
		default:
		}
	}
}
