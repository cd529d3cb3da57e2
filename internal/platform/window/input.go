package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/maysday/internal/core"
)

// inputSource is the slice of Ebitengine input the runner reads.
type inputSource interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
	clicked() (x, y int, ok bool) // pixel position of a new left press
}

// ebitenInput reads the live keyboard and mouse.
type ebitenInput struct{}

func (ebitenInput) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) clicked() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

// heldKeys are level-triggered: the action is set every tick the key is down.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowRight: core.ActionRight,
}

// edgeKeys fire once per press.
var edgeKeys = map[ebiten.Key]core.Action{
	ebiten.KeyE:      core.ActionInteract,
	ebiten.KeySpace:  core.ActionInteract,
	ebiten.KeyDigit1: core.ActionTool1,
	ebiten.KeyDigit2: core.ActionTool2,
	ebiten.KeyTab:    core.ActionNextTool,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyEscape: core.ActionPause,
	ebiten.KeyEnter:  core.ActionConfirm,
}

// readFrame fills frame from src. Returns true when the player asked to quit.
func readFrame(src inputSource, frame *core.InputFrame) bool {
	if src.justPressed(ebiten.KeyQ) {
		return true
	}
	for k, a := range heldKeys {
		if src.pressed(k) {
			frame.Set(a)
		}
	}
	for k, a := range edgeKeys {
		if src.justPressed(k) {
			frame.Set(a)
		}
	}
	if x, y, ok := src.clicked(); ok && x >= 0 && y >= 0 {
		frame.AddClick(x/CellW, y/CellH)
	}
	return false
}
