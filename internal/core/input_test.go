package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("New frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionBoost)
	if !f.Has(ActionJump) || !f.Has(ActionBoost) {
		t.Error("Set actions should be reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionBoost) {
		t.Error("Clear should reset the frame")
	}

	var zero InputFrame
	if zero.Has(ActionRestart) {
		t.Error("Zero frame should be empty")
	}
	zero.Set(ActionRestart)
	if !zero.Has(ActionRestart) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionBoost:   "Boost",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
