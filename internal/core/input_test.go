package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) || !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionNone)
	if !f.Has(ActionUp) {
		t.Error("Set(ActionUp) not recorded")
	}
	if len(f.Actions) != 1 {
		t.Errorf("ActionNone should not be stored, got %d actions", len(f.Actions))
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionUndo, ActionHint)
	if !f.Has(ActionUndo) || !f.Has(ActionHint) || f.Has(ActionUp) {
		t.Errorf("FrameOf produced %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionNextPiece, "NextPiece"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}
