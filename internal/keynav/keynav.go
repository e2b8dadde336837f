// Package keynav moves a focus cursor over the options of the question on
// screen and turns Enter/Space into a selection.
package keynav

import (
	"fmt"

	"charm.land/bubbles/v2/key"
)

// KeyMap holds the bindings the adapter reacts to.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultKeyMap returns arrow keys (plus j/k) and Enter/Space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "prev option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "next option"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("Enter", "select"),
		),
	}
}

// Action is what a key press resolved to.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionSelect
)

// Focus is the keyboard cursor over one question's options. The zero value
// is detached and ignores keys.
type Focus struct {
	keys     KeyMap
	options  []string
	index    int
	attached bool
}

// New creates a detached Focus using the default bindings.
func New() Focus {
	return Focus{keys: DefaultKeyMap()}
}

// Attach binds the cursor to a fresh option list and resets it to 0.
func (f *Focus) Attach(options []string) {
	f.options = options
	f.index = 0
	f.attached = true
}

// Detach stops the cursor from acting on its option list.
func (f *Focus) Detach() {
	f.options = nil
	f.index = 0
	f.attached = false
}

// Attached reports whether the cursor is bound to an option list.
func (f *Focus) Attached() bool {
	return f.attached
}

// Index returns the focused option index.
func (f *Focus) Index() int {
	return f.index
}

// SetIndex moves focus to i, clamped to the option range.
func (f *Focus) SetIndex(i int) {
	f.index = f.clamp(i)
}

// Focused returns the focused option.
func (f *Focus) Focused() (string, bool) {
	if !f.attached || f.index < 0 || f.index >= len(f.options) {
		return "", false
	}
	return f.options[f.index], true
}

// Keys returns the active bindings.
func (f *Focus) Keys() KeyMap {
	return f.keys
}

// HandleKey applies a key press. For ActionSelect the focused option is
// returned as well.
func (f *Focus) HandleKey(msg fmt.Stringer) (Action, string) {
	if !f.attached || len(f.options) == 0 {
		return ActionNone, ""
	}
	switch {
	case key.Matches(msg, f.keys.Up):
		f.index = f.clamp(f.index - 1)
		return ActionMoved, ""
	case key.Matches(msg, f.keys.Down):
		f.index = f.clamp(f.index + 1)
		return ActionMoved, ""
	case key.Matches(msg, f.keys.Select):
		opt, ok := f.Focused()
		if !ok {
			return ActionNone, ""
		}
		return ActionSelect, opt
	}
	return ActionNone, ""
}

func (f *Focus) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if last := len(f.options) - 1; i > last {
		return max(last, 0)
	}
	return i
}
