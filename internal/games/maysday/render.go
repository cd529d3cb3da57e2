package maysday

import (
	"fmt"
	"math"

	"github.com/vovakirdan/maysday/internal/core"
	"github.com/vovakirdan/maysday/internal/garden"
)

const (
	hudHeight    = 2 // status line + separator
	footerHeight = 2 // hotbar + hints

	patchSize = 48 // drawn edge of a dirt patch, world units
	bedW      = 96
	bedH      = 64
)

// patchBox is the drawn footprint of a dirt patch.
func patchBox(p core.Vec) core.Box {
	return core.BoxAt(p, patchSize, patchSize)
}

// bedBox is the drawn footprint of the bed.
func bedBox(p core.Vec) core.Box {
	return core.BoxAt(p, bedW, bedH)
}

// viewport maps world units of the active room onto screen cells.
type viewport struct {
	offX, offY   int     // screen cell of the room's top-left corner
	cols, rows   int     // room size in cells
	cellW, cellH float64 // world units per cell
	tooSmall     bool
}

func (g *Game) viewport() viewport {
	def := g.lay.Rooms[g.room]
	cx, cy := g.cfg.Render.CellsPerTileX, g.cfg.Render.CellsPerTileY
	v := viewport{
		cols:  def.Width * cx,
		rows:  def.Height * cy,
		cellW: g.lay.Tile / float64(cx),
		cellH: g.lay.Tile / float64(cy),
		offY:  hudHeight,
	}
	v.offX = (g.screenW - v.cols) / 2
	v.tooSmall = g.screenW < v.cols || g.screenH < v.rows+hudHeight+footerHeight
	return v
}

// toScreen returns the cell containing world point p. Row 0 of the room
// (bottom) is drawn last on screen.
func (v viewport) toScreen(p core.Vec) (int, int) {
	col := int(math.Floor(p.X / v.cellW))
	row := v.rows - 1 - int(math.Floor(p.Y/v.cellH))
	return v.offX + col, v.offY + row
}

// cellBox returns the world rectangle covered by a screen cell.
func (v viewport) cellBox(x, y int) core.Box {
	col := x - v.offX
	row := y - v.offY
	return core.Box{
		X: float64(col) * v.cellW,
		Y: float64(v.rows-1-row) * v.cellH,
		W: v.cellW,
		H: v.cellH,
	}
}

// inMap reports whether a screen cell lies on the room.
func (v viewport) inMap(x, y int) bool {
	return x >= v.offX && x < v.offX+v.cols && y >= v.offY && y < v.offY+v.rows
}

// fill paints every map cell whose centre lies inside box.
func (v viewport) fill(dst *core.Screen, box core.Box, r rune, c core.Color) {
	x0, y0 := v.toScreen(core.V(box.X, box.Top()))
	x1, y1 := v.toScreen(core.V(box.Right(), box.Y))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.inMap(x, y) && box.ContainsPoint(v.cellBox(x, y).Center()) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// mark paints box like fill and always paints the cell under anchor, so
// entities smaller than a cell stay visible.
func (v viewport) mark(dst *core.Screen, box core.Box, anchor core.Vec, r rune, c core.Color) {
	v.fill(dst, box, r, c)
	if x, y := v.toScreen(anchor); v.inMap(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.garden == nil {
		return
	}

	v := g.viewport()
	g.renderHUD(dst)

	// Handle special states
	if v.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", v.cols, v.rows+hudHeight+footerHeight))
		return
	}

	g.renderRoom(dst, v)
	g.renderFooter(dst, v)
	g.renderMessages(dst, v)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Maysday — Day %d  Saplings: %d", g.garden.Day, g.garden.Collected)
	if g.garden.Tomatoes > 0 {
		hud += fmt.Sprintf("  Tomatoes: %d", g.garden.Tomatoes)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	name := g.garden.Room(g.room).Name
	dst.DrawTextColored(dst.Width()-len([]rune(name))-1, 0, name, core.ColorCyan)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderRoom draws the background, walls, patches, bed, saplings and player.
func (g *Game) renderRoom(dst *core.Screen, v viewport) {
	r := g.garden.Room(g.room)

	if r.Background == "grass" {
		dst.DrawRect(core.NewRect(v.offX, v.offY, v.cols, v.rows), '.', core.ColorGreen)
	}

	tile := g.lay.Tile
	for _, w := range r.Walls() {
		box := core.Box{X: float64(w.X) * tile, Y: float64(w.Y) * tile, W: tile, H: tile}
		v.fill(dst, box, '▓', core.ColorGray)
	}

	for _, d := range r.Patches {
		glyph, color := ':', core.ColorBrown
		if d.Watered {
			glyph, color = '≈', core.ColorBlue
		}
		v.mark(dst, patchBox(d.Pos), d.Pos, glyph, color)
	}

	if r.Bed != nil {
		v.mark(dst, bedBox(*r.Bed), *r.Bed, '=', core.ColorMagenta)
	}

	for _, s := range r.Saplings {
		glyph, color := saplingGlyph(s.State())
		v.mark(dst, s.Bounds(), s.Pos(), glyph, color)
	}

	v.mark(dst, g.player, g.player.Center(), '@', core.ColorYellow)
}

// saplingGlyph returns how a sapling in the given state is drawn.
func saplingGlyph(s garden.State) (rune, core.Color) {
	switch s {
	case garden.Planted:
		return ',', core.ColorGreen
	case garden.Watered:
		return ';', core.ColorBrightGreen
	case garden.Grown:
		return '%', core.ColorRed
	default:
		return 'm', core.ColorBrightRed
	}
}

// renderFooter draws the hotbar and key hints below the room.
func (g *Game) renderFooter(dst *core.Screen, v viewport) {
	y := v.offY + v.rows
	x := v.offX
	for i, t := range garden.Tools {
		label := fmt.Sprintf(" %d %s ", i+1, t)
		color := core.ColorGray
		if t == g.tool {
			label = fmt.Sprintf("[%d %s]", i+1, t)
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, label, color)
		x += len([]rune(label)) + 1
	}

	hints := "WASD move  click/E use  1/2/Tab tool  P pause  Q quit"
	dst.DrawTextColored(v.offX, y+1, hints, core.ColorGray)
}

// renderMessages draws the pickup note and the morning banner.
func (g *Game) renderMessages(dst *core.Screen, v viewport) {
	if g.pickupTicks > 0 && g.pickupText != "" {
		px, py := v.toScreen(g.pickupPos)
		w := len([]rune(g.pickupText))
		x := core.Clamp(px-w/2, v.offX, v.offX+v.cols-w)
		y := core.Clamp(py-1, v.offY, v.offY+v.rows-1)
		dst.DrawTextColored(x, y, g.pickupText, core.ColorBrightYellow)
	}

	color, ok := g.dayMessageColor()
	if !ok {
		return
	}
	lines := []string{"Good morning!", fmt.Sprintf("Day %d", g.garden.Day)}
	mid := v.offY + v.rows/2 - 1
	for i, line := range lines {
		x := v.offX + (v.cols-len(line))/2
		dst.DrawTextColored(x, mid+i, line, color)
	}
}

// dayMessageColor returns the banner color for the current fade step: full
// brightness while the message holds, then one Dim per half of the fade.
func (g *Game) dayMessageColor() (core.Color, bool) {
	c := core.ColorBrightWhite
	switch {
	case g.dayTicks > 0:
		return c, true
	case g.fadeTicks <= 0:
		return core.ColorDefault, false
	}
	c = c.Dim()
	if g.fadeTicks*2 <= g.fadeTotal {
		c = c.Dim()
	}
	return c, true
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
