package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionQuit)

	if !f.Has(ActionUp) || !f.Has(ActionQuit) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("Unset action reported as present")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) {
		t.Error("Zero-value frame should report no actions")
	}

	f.Set(ActionUp) // Should allocate lazily, not panic
	if !f.Has(ActionUp) {
		t.Error("Set on a zero-value frame should work")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
