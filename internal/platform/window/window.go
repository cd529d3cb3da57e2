// Package window runs a game in a desktop window with Ebitengine. The game
// still draws into a core.Screen; wall cells become filled rectangles and
// every other cell a tinted debug-font glyph.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/maysday/internal/core"
	"github.com/vovakirdan/maysday/internal/registry"
	"github.com/vovakirdan/maysday/internal/storage"
)

// Cell size in pixels. The debug font is 6x16, so glyphs get a 1px margin.
const (
	CellW = 8
	CellH = 16
)

// Options configures a window session.
type Options struct {
	Store  *storage.Store // may be nil
	Logger *log.Logger    // nil discards
}

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game   registry.Game
	screen *core.Screen
	frame  core.InputFrame
	input  inputSource
	store  *storage.Store
	logger *log.Logger
	seed   int64
	state  core.GameState
	saved  bool
	glyphs map[rune]*ebiten.Image
}

// NewRunner wraps an already Reset game.
func NewRunner(game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:  core.NewInputFrame(),
		input:  ebitenInput{},
		store:  opts.Store,
		logger: logger,
		seed:   cfg.Seed,
		state:  game.State(),
		glyphs: make(map[rune]*ebiten.Image),
	}
}

// Update advances the game by one tick.
func (r *Runner) Update() error {
	if readFrame(r.input, &r.frame) {
		r.saveSeason()
		return ebiten.Termination
	}

	res := r.game.Step(r.frame)
	r.state = res.State
	for _, e := range res.Events {
		r.logger.Info(e, "day", r.state.Day)
	}
	r.frame.Clear()
	return nil
}

// Draw paints the game's screen buffer.
func (r *Runner) Draw(dst *ebiten.Image) {
	r.screen.Clear()
	r.game.Render(r.screen)

	for y := 0; y < r.screen.Height(); y++ {
		for x := 0; x < r.screen.Width(); x++ {
			cell := r.screen.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			if cell.Rune == '▓' {
				vector.DrawFilledRect(dst, float32(x*CellW), float32(y*CellH), CellW, CellH, rgba(cell.Color), false)
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*CellW), float64(y*CellH))
			op.ColorScale.ScaleWithColor(rgba(cell.Color))
			dst.DrawImage(r.glyph(cell.Rune), op)
		}
	}
}

// glyph returns a cached white image of ch. The debug font only draws
// white, so color comes from the draw options.
func (r *Runner) glyph(ch rune) *ebiten.Image {
	ch = asciiGlyph(ch)
	if img, ok := r.glyphs[ch]; ok {
		return img
	}
	img := ebiten.NewImage(CellW, CellH)
	ebitenutil.DebugPrintAt(img, string(ch), 1, 0)
	r.glyphs[ch] = img
	return img
}

// Layout keeps one screen cell per CellW x CellH pixels and tells the game
// when the number of cells changes.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(outsideWidth/CellW, 1)
	rows := max(outsideHeight/CellH, 1)
	if cols != r.screen.Width() || rows != r.screen.Height() {
		r.screen.Resize(cols, rows)
		if rz, ok := r.game.(registry.Resizer); ok {
			rz.Resize(cols, rows)
		}
	}
	return cols * CellW, rows * CellH
}

// saveSeason records the session once, if anything happened in it.
func (r *Runner) saveSeason() {
	if r.saved || r.store == nil {
		return
	}
	r.saved = true

	st := r.game.State()
	if st.Day <= 1 && st.Score == 0 {
		return
	}
	season := storage.Season{
		GameID:    r.game.ID(),
		Seed:      r.seed,
		Days:      st.Day,
		Tomatoes:  st.Score,
		Collected: st.Held,
	}
	if _, err := r.store.SaveSeason(season); err != nil {
		r.logger.Warn("season not saved", "error", err)
	}
}

// Run resets the game and opens the window. Closing the window or pressing
// Q ends the session.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	runner := NewRunner(game, cfg, opts)

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(cfg.ScreenW*CellW, cfg.ScreenH*CellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(runner)
	runner.saveSeason() // window closed
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
