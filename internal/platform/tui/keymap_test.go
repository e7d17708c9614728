package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/slide/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"up", core.ActionUp, false},
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"tab", core.ActionNextPiece, false},
		{"u", core.ActionUndo, false},
		{"r", core.ActionRestart, false},
		{"]", core.ActionNextLevel, false},
		{"[", core.ActionPrevLevel, false},
		{"h", core.ActionHint, false},
		{"enter", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()

	var frame core.InputFrame
	assert.False(t, km.MapKeyToFrame(keyMsg("x"), &frame))
	assert.True(t, frame.Empty())

	assert.False(t, km.MapKeyToFrame(keyMsg("left"), &frame))
	assert.True(t, frame.Has(core.ActionLeft))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyMsg("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyMsg("down")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyMsg("enter")))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(keyMsg("esc")))
	assert.Equal(t, MenuActionBests, km.MapKeyToMenuAction(keyMsg("tab")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyMsg("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(keyMsg("x")))
}
