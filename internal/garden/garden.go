package garden

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maysday/internal/core"
)

// Rules holds the tunable distances and counts of the farming rules.
type Rules struct {
	Tile         float64  // world units per tile
	Reach        float64  // player must be closer than this to a sapling
	ClickRadius  float64  // click must be closer than this to a sapling
	PlantRadius  float64  // click must be closer than this to a free patch
	BedRadius    float64  // click must be closer than this to the bed
	GrowthFactor float64  // scale multiplier on Watered -> Grown
	SaplingScale float64  // render scale of a fresh sapling
	SpawnMin     int      // inclusive lower bound of the daily spawn count
	SpawnMax     int      // inclusive upper bound of the daily spawn count
	SpawnFixed   int      // when > 0, overrides the random count
	SpawnOffset  core.Vec // offset of a spawned sapling from its tile corner
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		Tile:         64,
		Reach:        80,
		ClickRadius:  50,
		PlantRadius:  10,
		BedRadius:    80,
		GrowthFactor: 4.5,
		SaplingScale: 0.5,
		SpawnMin:     1,
		SpawnMax:     3,
		SpawnOffset:  core.V(30, 50),
	}
}

// Outcome describes what a click did.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeWatered           // at least one sapling was watered
	OutcomeHarvested         // a non-grown sapling was dug up
	OutcomeTomato            // a grown sapling was harvested
	OutcomePlanted           // a sapling went into a patch
	OutcomeSlept             // the day advanced
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWatered:
		return "watered"
	case OutcomeHarvested:
		return "harvested"
	case OutcomeTomato:
		return "tomato"
	case OutcomePlanted:
		return "planted"
	case OutcomeSlept:
		return "slept"
	default:
		return "unknown"
	}
}

// Result reports the effect of one click. Outcome is the last effect; a
// harvest followed by planting or sleeping is still recorded in Harvest.
type Result struct {
	Outcome    Outcome
	Pos        core.Vec // where the effect happened
	Watered    int      // saplings watered by this click
	Harvest    Outcome  // OutcomeHarvested, OutcomeTomato or OutcomeNone
	HarvestPos core.Vec
}

// Garden owns the rooms and the session counters and applies every rule.
// It is not safe for concurrent use; the game loop calls it from Step only.
type Garden struct {
	Rooms []*Room

	Collected int // saplings in hand
	Tomatoes  int // grown saplings harvested
	Day       int // starts at 1

	rules  Rules
	rng    *rand.Rand
	logger *log.Logger
	nextID int
}

// New creates a garden on day 1 and scatters saplings in every room that
// spawns on setup. A nil logger discards output.
func New(rooms []*Room, rules Rules, rng *rand.Rand, logger *log.Logger) *Garden {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Garden{
		Rooms:  rooms,
		Day:    1,
		rules:  rules,
		rng:    rng,
		logger: logger,
	}
	for _, r := range rooms {
		if r.SpawnOnSetup {
			g.Respawn(r)
		}
	}
	return g
}

// Rules returns the rule set in use.
func (g *Garden) Rules() Rules {
	return g.rules
}

// Room returns the room with the given index, or nil.
func (g *Garden) Room(i int) *Room {
	if i < 0 || i >= len(g.Rooms) {
		return nil
	}
	return g.Rooms[i]
}

// SpawnSapling places a new Collected sapling at p.
func (g *Garden) SpawnSapling(r *Room, p core.Vec) *Sapling {
	s := newSapling(g.nextID, p, g.rules.SaplingScale)
	g.nextID++
	r.Saplings = append(r.Saplings, s)
	return s
}

// spawnCount picks how many saplings appear.
func (g *Garden) spawnCount() int {
	if g.rules.SpawnFixed > 0 {
		return g.rules.SpawnFixed
	}
	lo, hi := g.rules.SpawnMin, g.rules.SpawnMax
	if hi < lo {
		hi = lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Respawn replaces the room's saplings with a fresh random set and returns
// how many were placed. If the room cannot fit the requested count it is
// clamped to the number of open tiles.
func (g *Garden) Respawn(r *Room) int {
	n := g.spawnCount()
	open := r.OpenTiles()

	tiles, err := SelectSpawnPoints(g.rng, open, n)
	if errors.Is(err, ErrInsufficientOpenSpace) {
		g.logger.Warn("clamping sapling spawn", "room", r.ID, "requested", n, "open", len(open))
		tiles, _ = SelectSpawnPoints(g.rng, open, len(open))
	}

	r.clearSaplings()
	for _, t := range tiles {
		p := core.V(float64(t.X)*g.rules.Tile, float64(t.Y)*g.rules.Tile).Add(g.rules.SpawnOffset)
		g.SpawnSapling(r, p)
	}
	g.logger.Debug("saplings spawned", "room", r.ID, "count", len(tiles), "tiles", tiles)
	return len(tiles)
}

// Targets returns the saplings a click affects: closer than Reach to the
// player and closer than ClickRadius to the click, in room order.
func (g *Garden) Targets(r *Room, player, click core.Vec) []*Sapling {
	var hit []*Sapling
	for _, s := range r.Saplings {
		if core.Dist(player, s.pos) < g.rules.Reach && core.Dist(click, s.pos) < g.rules.ClickRadius {
			hit = append(hit, s)
		}
	}
	return hit
}

// Harvest removes s from r and credits the counters.
// Grown saplings yield a tomato; anything else goes back into the hand.
func (g *Garden) Harvest(r *Room, s *Sapling) Outcome {
	out := OutcomeHarvested
	if s.state == Grown {
		g.Tomatoes++
		out = OutcomeTomato
	} else {
		g.Collected++
	}
	s.release()
	r.remove(s)
	g.logger.Debug("sapling harvested", "room", r.ID, "id", s.ID, "state", s.state, "collected", g.Collected, "tomatoes", g.Tomatoes)
	return out
}

// Plant puts a sapling from the hand into the first free patch within
// PlantRadius of the click. It needs the shovel and at least one sapling.
func (g *Garden) Plant(r *Room, tool Tool, click core.Vec) (*Sapling, bool) {
	if g.Collected <= 0 || tool != Shovel {
		return nil, false
	}
	for _, p := range r.Patches {
		if p.Planted || core.Dist(click, p.Pos) >= g.rules.PlantRadius {
			continue
		}
		s := g.SpawnSapling(r, p.Pos)
		s.Plant(p)
		g.Collected--
		g.logger.Debug("sapling planted", "room", r.ID, "patch", p.ID, "collected", g.Collected)
		return s, true
	}
	return nil, false
}

// NearBed reports whether the click lands on the room's bed.
func (g *Garden) NearBed(r *Room, click core.Vec) bool {
	return r.Bed != nil && core.Dist(click, *r.Bed) < g.rules.BedRadius
}

// AdvanceDay moves to the next morning: daily rooms get fresh saplings and
// every Watered sapling in the active room grows. Returns how many grew.
func (g *Garden) AdvanceDay(active *Room) int {
	g.Day++
	for _, r := range g.Rooms {
		if r.RespawnDaily {
			g.Respawn(r)
		}
	}

	grown := 0
	for _, s := range active.Saplings {
		if s.Grow(g.rules.GrowthFactor) {
			grown++
		}
	}
	g.logger.Debug("day advanced", "day", g.Day, "room", active.ID, "grown", grown)
	return grown
}

// Click applies one pointer interaction in room r.
// Saplings are resolved first and the shovel digs up only the first target.
// The same click then tries planting, which ends the click on success, and
// finally the bed.
func (g *Garden) Click(r *Room, tool Tool, player, click core.Vec) Result {
	var res Result

	targets := g.Targets(r, player, click)
	switch tool {
	case WateringCan:
		for _, s := range targets {
			if s.Water() {
				res.Watered++
			}
		}
		if res.Watered > 0 {
			res.Outcome = OutcomeWatered
			res.Pos = targets[0].pos
			g.logger.Debug("saplings watered", "room", r.ID, "count", res.Watered)
		}
	case Shovel:
		if len(targets) > 0 {
			s := targets[0]
			res.Harvest = g.Harvest(r, s)
			res.HarvestPos = s.pos
			res.Outcome, res.Pos = res.Harvest, s.pos
		}
	}

	if s, ok := g.Plant(r, tool, click); ok {
		res.Outcome = OutcomePlanted
		res.Pos = s.pos
		return res
	}

	if g.NearBed(r, click) {
		g.AdvanceDay(r)
		res.Outcome = OutcomeSlept
		res.Pos = *r.Bed
	}
	return res
}

// Snapshot captures the garden for determinism checks.
type Snapshot struct {
	Day       int
	Collected int
	Tomatoes  int
	Saplings  [][]SaplingSnapshot
}

// SaplingSnapshot captures one sapling.
type SaplingSnapshot struct {
	ID    int
	Pos   core.Vec
	State State
	Patch int // -1 when not planted
}

// Snapshot returns a copy of the garden's observable state.
func (g *Garden) Snapshot() Snapshot {
	snap := Snapshot{
		Day:       g.Day,
		Collected: g.Collected,
		Tomatoes:  g.Tomatoes,
		Saplings:  make([][]SaplingSnapshot, len(g.Rooms)),
	}
	for i, r := range g.Rooms {
		for _, s := range r.Saplings {
			patch := -1
			if s.patch != nil {
				patch = s.patch.ID
			}
			snap.Saplings[i] = append(snap.Saplings[i], SaplingSnapshot{
				ID: s.ID, Pos: s.pos, State: s.state, Patch: patch,
			})
		}
	}
	return snap
}
