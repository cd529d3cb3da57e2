// Package maysday is the farming game session: it owns the player, the
// selected tool and the active room, and turns frames of input into garden
// interactions.
package maysday

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maysday/internal/config"
	"github.com/vovakirdan/maysday/internal/core"
	"github.com/vovakirdan/maysday/internal/garden"
	"github.com/vovakirdan/maysday/internal/layout"
	"github.com/vovakirdan/maysday/internal/physics"
	"github.com/vovakirdan/maysday/internal/registry"
)

// Game implements the farming game.
type Game struct {
	cfg      config.GardenConfig
	lay      *layout.Layout
	garden   *garden.Garden
	resolver *physics.Resolver

	tick     uint64
	tickRate int
	room     int
	tool     garden.Tool
	player   core.Box
	paused   bool

	// Day message is fully visible for dayTicks, then fades over fadeTicks.
	dayTicks  int
	fadeTicks int
	fadeTotal int

	pickupText  string
	pickupPos   core.Vec
	pickupTicks int

	// Screen dimensions
	screenW int
	screenH int
}

// Package-level settings applied on the next Reset.
var (
	configPath string
	layoutPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the game config file path. Empty means the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetLayoutPath sets the room layout file. Empty means the embedded layout.
func SetLayoutPath(path string) {
	layoutPath = path
}

// SetLogger sets the logger used by new sessions. Nil discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a new farming game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maysday", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maysday"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maysday"
}

// Reset starts a fresh farm on day 1.
// Config or layout failures are returned and leave the game unusable.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	gc, err := config.LoadGarden(configPath)
	if err != nil {
		return fmt.Errorf("maysday: %w", err)
	}
	lay, err := layout.Load(layoutPath)
	if err != nil {
		return fmt.Errorf("maysday: %w", err)
	}

	g.cfg = gc
	g.lay = lay
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.garden = garden.New(lay.Build(), rulesFrom(gc, lay.Tile), rng, logger)

	g.room = 0
	g.resolver = physics.NewResolver(lay.WallBoxes(g.room))
	g.player = core.BoxAt(core.V(gc.Player.StartX, gc.Player.StartY), gc.Player.Size, gc.Player.Size)
	g.tool = garden.WateringCan
	g.paused = false
	g.dayTicks, g.fadeTicks, g.fadeTotal = 0, 0, 0
	g.pickupText, g.pickupTicks = "", 0

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	logger.Info("new farm", "seed", cfg.Seed, "room", lay.Rooms[g.room].ID)
	return nil
}

// rulesFrom builds garden rules from the game config.
func rulesFrom(c config.GardenConfig, tile float64) garden.Rules {
	return garden.Rules{
		Tile:         tile,
		Reach:        c.Interaction.Reach,
		ClickRadius:  c.Interaction.Click,
		PlantRadius:  c.Interaction.Plant,
		BedRadius:    c.Interaction.Bed,
		GrowthFactor: c.Growth.Factor,
		SaplingScale: c.Growth.SaplingScale,
		SpawnMin:     c.Spawn.Min,
		SpawnMax:     c.Spawn.Max,
		SpawnFixed:   c.Spawn.Fixed,
		SpawnOffset:  core.V(c.Spawn.OffsetX, c.Spawn.OffsetY),
	}
}

// Resize adapts to a new screen size without touching the farm.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.garden == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.viewport().tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.countdown()
	g.selectTool(input)
	g.move(input)
	g.checkRoomTransition()

	var events []string
	if input.Has(core.ActionInteract) {
		if at, ok := g.nearestAnchor(); ok {
			events = g.interact(at, events)
		}
	}
	for _, c := range input.Clicks {
		if at, ok := g.clickTarget(c.X, c.Y); ok {
			events = g.interact(at, events)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// countdown advances the message timers.
func (g *Game) countdown() {
	switch {
	case g.dayTicks > 0:
		g.dayTicks--
	case g.fadeTicks > 0:
		g.fadeTicks--
	}
	if g.pickupTicks > 0 {
		g.pickupTicks--
		if g.pickupTicks == 0 {
			g.pickupText = ""
		}
	}
}

// selectTool handles hotbar keys.
func (g *Game) selectTool(input core.InputFrame) {
	prev := g.tool
	switch {
	case input.Has(core.ActionTool1):
		g.tool = garden.WateringCan
	case input.Has(core.ActionTool2):
		g.tool = garden.Shovel
	case input.Has(core.ActionNextTool):
		g.tool = g.tool.Next()
	}
	if g.tool != prev {
		logger.Debug("tool selected", "tool", g.tool)
	}
}

// move walks the player against the current room's walls.
func (g *Game) move(input core.InputFrame) {
	var dx, dy float64
	speed := g.cfg.Player.Speed
	if input.Has(core.ActionLeft) {
		dx -= speed
	}
	if input.Has(core.ActionRight) {
		dx += speed
	}
	// World space is y-up
	if input.Has(core.ActionUp) {
		dy += speed
	}
	if input.Has(core.ActionDown) {
		dy -= speed
	}
	if dx == 0 && dy == 0 {
		return
	}
	g.player = g.resolver.Move(g.player, dx, dy)
}

// checkRoomTransition links the right edge of the first room to the left
// edge of the second.
func (g *Game) checkRoomTransition() {
	x := g.player.Center().X
	switch {
	case g.room == 0 && x > g.lay.WorldWidth(0):
		g.enterRoom(1, 0)
	case g.room == 1 && x < 0:
		g.enterRoom(0, g.lay.WorldWidth(0))
	}
}

// enterRoom switches rooms, places the player's centre at x and rebinds
// the resolver to the new walls.
func (g *Game) enterRoom(room int, x float64) {
	from := g.room
	g.room = room
	g.player.X = x - g.player.W/2
	g.resolver.Bind(g.lay.WallBoxes(room))
	logger.Debug("room changed", "from", g.lay.Rooms[from].ID, "to", g.lay.Rooms[room].ID)
}

// interact applies the selected tool at a world position and arms messages.
func (g *Game) interact(at core.Vec, events []string) []string {
	r := g.garden.Room(g.room)
	res := g.garden.Click(r, g.tool, g.player.Center(), at)

	if res.Harvest != garden.OutcomeNone {
		g.pickupText = pickupMessage(g.room, res.Harvest)
		g.pickupPos = res.HarvestPos
		g.pickupTicks = g.seconds(g.cfg.Messages.PickupSeconds)
		events = append(events, g.pickupText)
	}
	switch res.Outcome {
	case garden.OutcomePlanted:
		events = append(events, "Sapling planted")
	case garden.OutcomeSlept:
		g.dayTicks = g.seconds(g.cfg.Messages.DaySeconds)
		g.fadeTicks = g.seconds(g.cfg.Messages.FadeSeconds)
		g.fadeTotal = g.fadeTicks
		events = append(events, fmt.Sprintf("Good morning! Day %d", g.garden.Day))
	}
	if res.Watered > 0 {
		events = append(events, fmt.Sprintf("Watered %d", res.Watered))
	}
	return events
}

// pickupMessage returns the text shown where a sapling was dug up.
func pickupMessage(room int, out garden.Outcome) string {
	switch {
	case room == 0:
		return "Mystery sapling collected"
	case out == garden.OutcomeTomato:
		return "Tomato collected"
	default:
		return "Sapling collected"
	}
}

// seconds converts a duration to ticks.
func (g *Game) seconds(s float64) int {
	return int(math.Round(s * float64(g.tickRate)))
}

// nearestAnchor returns the closest interactable within reach of the player.
func (g *Game) nearestAnchor() (core.Vec, bool) {
	r := g.garden.Room(g.room)
	p := g.player.Center()
	best := g.cfg.Interaction.Reach
	var at core.Vec
	found := false

	consider := func(a core.Vec) {
		if d := core.Dist(p, a); d < best {
			best, at, found = d, a, true
		}
	}
	for _, s := range r.Saplings {
		consider(s.Pos())
	}
	for _, d := range r.Patches {
		if !d.Planted {
			consider(d.Pos)
		}
	}
	if r.Bed != nil {
		consider(*r.Bed)
	}
	return at, found
}

// clickTarget maps a screen cell to a world position. Clicks on any cell of
// an entity land on that entity's anchor; other map cells use the cell centre.
func (g *Game) clickTarget(x, y int) (core.Vec, bool) {
	v := g.viewport()
	if !v.inMap(x, y) {
		return core.Vec{}, false
	}
	cell := v.cellBox(x, y)
	centre := cell.Center()
	r := g.garden.Room(g.room)

	for _, s := range r.Saplings {
		if cell.ContainsPoint(s.Pos()) || s.Bounds().ContainsPoint(centre) {
			return s.Pos(), true
		}
	}
	for _, d := range r.Patches {
		if cell.ContainsPoint(d.Pos) || patchBox(d.Pos).ContainsPoint(centre) {
			return d.Pos, true
		}
	}
	if r.Bed != nil {
		if cell.ContainsPoint(*r.Bed) || bedBox(*r.Bed).ContainsPoint(centre) {
			return *r.Bed, true
		}
	}
	return centre, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{Paused: g.paused}
	if g.garden != nil {
		state.Score = g.garden.Tomatoes
		state.Day = g.garden.Day
		state.Held = g.garden.Collected
	}
	return state
}
