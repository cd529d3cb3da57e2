package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maysday/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"e", runeKey("e"), core.ActionInteract, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionInteract, false},
		{"1", runeKey("1"), core.ActionTool1, false},
		{"2", runeKey("2"), core.ActionTool2, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextTool, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHeldMovementExpires(t *testing.T) {
	km := NewKeyMapper(3)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("d"), &frame)
	if frame.Has(core.ActionRight) {
		t.Fatal("movement should only reach the frame through ApplyHeld")
	}

	for i := 0; i < 3; i++ {
		frame.Clear()
		km.ApplyHeld(&frame)
		if !frame.Has(core.ActionRight) {
			t.Errorf("tick %d: right should still be held", i)
		}
	}

	frame.Clear()
	km.ApplyHeld(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("hold should expire without a repeat")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("w"), &frame)
	for _i := 0; _i < 10; _i++ {
		frame.Clear()
		km.ApplyHeld(&frame)
		km.MapKeyToFrame(runeKey("w"), &frame) // terminal key repeat
		if !frame.Has(core.ActionUp) {
			t.Fatal("repeating key should stay held")
		}
	}
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	km := NewKeyMapper(5)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("a"), &frame)
	km.MapKeyToFrame(runeKey("w"), &frame)
	km.MapKeyToFrame(runeKey("d"), &frame)
	km.ApplyHeld(&frame)

	if frame.Has(core.ActionLeft) {
		t.Error("left should be cancelled by right")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Error("right and up should both be held")
	}

	km.Release()
	frame.Clear()
	km.ApplyHeld(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("Release should drop all holds, got %v", frame.Actions)
	}
}

func TestEdgeActionsSetDirectly(t *testing.T) {
	km := NewKeyMapper(0)
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey("e"), &frame); quit {
		t.Error("e is not a quit key")
	}
	if !frame.Has(core.ActionInteract) {
		t.Error("interact should be set on the frame")
	}

	if quit := km.MapKeyToFrame(runeKey("q"), &frame); !quit {
		t.Error("q should quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper(0)
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	km.MapMouseToFrame(tea.MouseMsg{X: 6, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)

	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Click{X: 3, Y: 7}) {
		t.Errorf("Clicks = %v, expected one left press at (3,7)", frame.Clicks)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
