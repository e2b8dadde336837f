// Package anim schedules short-lived display effects as tagged ticks.
// Every effect carries an id and a generation; restarting or cancelling an
// effect bumps the generation so ticks already in flight are dropped.
package anim

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

const (
	FlashDuration   = 1500 * time.Millisecond
	CountUpDuration = 1500 * time.Millisecond
	CountUpSteps    = 60
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FlashExpiredMsg hides a flash.
type FlashExpiredMsg struct {
	ID  int
	Gen int
}

// Flash shows a message for a fixed duration.
type Flash struct {
	id       int
	gen      int
	text     string
	visible  bool
	duration time.Duration
}

// NewFlash creates a hidden flash with the default duration.
func NewFlash() Flash {
	return Flash{id: nextID(), duration: FlashDuration}
}

// Show displays text and schedules its expiry. Showing again restarts the
// timer.
func (f *Flash) Show(text string) tea.Cmd {
	f.gen++
	f.text = text
	f.visible = true
	id, gen := f.id, f.gen
	return tea.Tick(f.duration, func(time.Time) tea.Msg {
		return FlashExpiredMsg{ID: id, Gen: gen}
	})
}

// Cancel hides the flash and drops any pending expiry.
func (f *Flash) Cancel() {
	f.gen++
	f.visible = false
}

// Update consumes expiry messages. It reports whether msg belonged to this
// flash's current generation.
func (f *Flash) Update(msg tea.Msg) bool {
	m, ok := msg.(FlashExpiredMsg)
	if !ok || m.ID != f.id || m.Gen != f.gen {
		return false
	}
	f.visible = false
	return true
}

// Visible reports whether the flash is on screen.
func (f Flash) Visible() bool { return f.visible }

// Text returns the flash text.
func (f Flash) Text() string { return f.text }

// CountUpTickMsg advances a CountUp by one step.
type CountUpTickMsg struct {
	ID   int
	Gen  int
	Step int
}

// CountUp animates a number from 0 to a target.
type CountUp struct {
	id     int
	gen    int
	target int
	step   int
	steps  int
	every  time.Duration
}

// NewCountUp creates a CountUp towards target with the default pacing. It
// shows 0 until started or finished.
func NewCountUp(target int) CountUp {
	return CountUp{
		id:     nextID(),
		target: target,
		steps:  CountUpSteps,
		every:  CountUpDuration / CountUpSteps,
	}
}

// Start resets the value to 0 and begins counting to target, replacing the
// previous target.
func (c *CountUp) Start(target int) tea.Cmd {
	c.gen++
	c.target = target
	c.step = 0
	if target <= 0 {
		c.step = c.steps
		return nil
	}
	return c.tick()
}

func (c *CountUp) tick() tea.Cmd {
	id, gen, step := c.id, c.gen, c.step+1
	return tea.Tick(c.every, func(time.Time) tea.Msg {
		return CountUpTickMsg{ID: id, Gen: gen, Step: step}
	})
}

// Cancel stops the animation where it is.
func (c *CountUp) Cancel() {
	c.gen++
}

// Finish jumps straight to the target.
func (c *CountUp) Finish() {
	c.gen++
	c.step = c.steps
}

// Update advances on this CountUp's own ticks and schedules the next one.
func (c *CountUp) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(CountUpTickMsg)
	if !ok || m.ID != c.id || m.Gen != c.gen {
		return nil
	}
	c.step = min(m.Step, c.steps)
	if c.step >= c.steps {
		return nil
	}
	return c.tick()
}

// Value returns the number currently displayed.
func (c CountUp) Value() int {
	if c.steps == 0 || c.step >= c.steps {
		return c.target
	}
	return c.target * c.step / c.steps
}

// Done reports whether the target has been reached.
func (c CountUp) Done() bool {
	return c.step >= c.steps
}
