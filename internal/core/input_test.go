package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionInteract)

	if !f.Has(ActionUp) || !f.Has(ActionInteract) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClearKeepsNothing(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.AddClick(3, 4)

	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	if len(f.Clicks) != 0 {
		t.Errorf("Clear should drop clicks, got %d", len(f.Clicks))
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.AddClick(1, 2)

	c := f.Clone()
	f.Clear()
	f.AddClick(9, 9)

	if !c.Has(ActionRight) {
		t.Error("clone should keep actions after original is cleared")
	}
	if len(c.Clicks) != 1 || c.Clicks[0] != (Click{X: 1, Y: 2}) {
		t.Errorf("clone clicks = %v, expected [{1 2}]", c.Clicks)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:     "None",
		ActionLeft:     "Left",
		ActionTool2:    "Tool2",
		ActionNextTool: "NextTool",
		ActionInteract: "Interact",
		Action(99):     "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
