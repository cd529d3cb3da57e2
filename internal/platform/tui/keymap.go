package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maysday/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its last
// press. Terminals report key repeats but never key releases, so a held key
// is one that keeps repeating faster than this window.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // movement action -> ticks left
}

// NewKeyMapper creates a new key mapper with default bindings.
// holdTicks <= 0 uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "e", " ":
		return core.ActionInteract, false
	case "1":
		return core.ActionTool1, false
	case "2":
		return core.ActionTool2, false
	case "tab":
		return core.ActionNextTool, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// isMovement reports whether a is one of the four walking directions.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// opposite returns the direction cancelled by pressing a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Movement keys start or extend a hold instead of setting a single frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case isMovement(action):
		km.held[action] = km.holdTicks
		delete(km.held, opposite(action))
	default:
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a click on its cell.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.AddClick(msg.X, msg.Y)
	}
}

// ApplyHeld sets every held movement action on frame and ages the holds by
// one tick. Call once per simulation tick before stepping.
func (km *KeyMapper) ApplyHeld(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Set(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
}

// Release drops every hold, e.g. when the game pauses.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
