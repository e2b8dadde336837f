package keynav

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

var options = []string{"Bhau-Bhau", "Meow-Meow", "Oink-Oink"}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func attached() *Focus {
	f := New()
	f.Attach(options)
	return &f
}

func TestClampAtTop(t *testing.T) {
	f := attached()

	action, _ := f.HandleKey(press(tea.KeyUp))
	assert.Equal(t, ActionMoved, action)
	assert.Equal(t, 0, f.Index())
}

func TestClampAtBottom(t *testing.T) {
	f := attached()

	for i := 0; i < 5; i++ {
		f.HandleKey(press(tea.KeyDown))
	}
	assert.Equal(t, 2, f.Index())
}

func TestMoveUpAndDown(t *testing.T) {
	f := attached()

	f.HandleKey(press(tea.KeyDown))
	f.HandleKey(press(tea.KeyDown))
	f.HandleKey(press(tea.KeyUp))
	assert.Equal(t, 1, f.Index())

	f.HandleKey(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 2, f.Index())
	f.HandleKey(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 1, f.Index())
}

func TestSelectFocused(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
	}{
		{"enter", press(tea.KeyEnter)},
		{"space", press(tea.KeySpace)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := attached()
			f.HandleKey(press(tea.KeyDown))

			action, opt := f.HandleKey(tt.msg)
			assert.Equal(t, ActionSelect, action)
			assert.Equal(t, "Meow-Meow", opt)
		})
	}
}

func TestAttachResetsFocus(t *testing.T) {
	f := attached()
	f.HandleKey(press(tea.KeyDown))
	f.HandleKey(press(tea.KeyDown))

	f.Attach([]string{"Venus", "Mars", "Jupiter"})
	assert.Equal(t, 0, f.Index())
	opt, ok := f.Focused()
	assert.True(t, ok)
	assert.Equal(t, "Venus", opt)
}

func TestDetachedIgnoresKeys(t *testing.T) {
	f := attached()
	f.Detach()

	action, opt := f.HandleKey(press(tea.KeyEnter))
	assert.Equal(t, ActionNone, action)
	assert.Empty(t, opt)
	assert.False(t, f.Attached())

	var zero Focus
	action, _ = zero.HandleKey(press(tea.KeyDown))
	assert.Equal(t, ActionNone, action)
}

func TestUnboundKey(t *testing.T) {
	f := attached()
	action, _ := f.HandleKey(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, 0, f.Index())
}

func TestSetIndexClamps(t *testing.T) {
	f := attached()
	f.SetIndex(10)
	assert.Equal(t, 2, f.Index())
	f.SetIndex(-3)
	assert.Equal(t, 0, f.Index())
}
