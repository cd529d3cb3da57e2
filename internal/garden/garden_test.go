package garden

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/maysday/internal/core"
)

var fieldWalls = []Tile{
	{1, 2}, {1, 7},
	{2, 2}, {2, 4}, {2, 5}, {2, 7},
	{3, 2}, {3, 3}, {3, 4}, {3, 7},
	{4, 6}, {4, 7},
	{5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 6},
	{6, 4}, {6, 6}, {6, 7},
	{7, 1}, {7, 3}, {7, 4},
	{8, 3}, {8, 7},
	{9, 2}, {9, 3}, {9, 4}, {9, 5}, {9, 7},
	{10, 5}, {10, 7},
	{11, 2}, {11, 4}, {11, 5}, {11, 7}, {11, 8},
	{12, 2},
}

// newTestGarden builds a field room (index 0, daily respawn) and a farm room
// (index 1) with two patches and a bed.
func newTestGarden(seed int64) *Garden {
	field := NewRoom(0, "field", 14, 10, fieldWalls)
	field.RespawnDaily = true
	field.SpawnOnSetup = true

	farm := NewRoom(1, "farm", 14, 10, []Tile{{5, 6}})
	farm.AddPatch(core.V(640, 448))
	farm.AddPatch(core.V(704, 448))
	bed := core.V(672, 544)
	farm.Bed = &bed

	return New([]*Room{field, farm}, DefaultRules(), rand.New(rand.NewSource(seed)), nil)
}

// plantedAt returns a sapling planted in the given patch of the farm.
func plantedAt(t *testing.T, g *Garden, patch int) *Sapling {
	t.Helper()
	farm := g.Rooms[1]
	g.Collected++
	s, ok := g.Plant(farm, Shovel, farm.Patches[patch].Pos)
	if !ok {
		t.Fatalf("planting in patch %d failed", patch)
	}
	return s
}

func TestWaterOnlyFromPlanted(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *Sapling)
		from     State
		expected State
		ok       bool
	}{
		{"planted becomes watered", func(s *Sapling) {}, Planted, Watered, true},
		{"watered stays watered", func(s *Sapling) { s.Water() }, Watered, Watered, false},
		{"grown stays grown", func(s *Sapling) { s.Water(); s.Grow(4.5) }, Grown, Grown, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGarden(1)
			s := plantedAt(t, g, 0)
			tc.setup(s)
			if s.State() != tc.from {
				t.Fatalf("setup state = %v, expected %v", s.State(), tc.from)
			}

			if got := s.Water(); got != tc.ok {
				t.Errorf("Water() = %v, expected %v", got, tc.ok)
			}
			if s.State() != tc.expected {
				t.Errorf("state = %v, expected %v", s.State(), tc.expected)
			}
		})
	}

	t.Run("collected is ignored", func(t *testing.T) {
		g := newTestGarden(1)
		s := g.SpawnSapling(g.Rooms[0], core.V(100, 100))
		if s.Water() || s.State() != Collected {
			t.Errorf("Water() on collected sapling changed it to %v", s.State())
		}
	})
}

func TestGrowOnlyFromWatered(t *testing.T) {
	g := newTestGarden(1)
	s := plantedAt(t, g, 0)
	before := s.Scale()

	if s.Grow(4.5) {
		t.Fatal("Grow() on planted sapling should be a no-op")
	}
	if s.State() != Planted || s.Scale() != before {
		t.Fatalf("planted sapling changed: state %v scale %v", s.State(), s.Scale())
	}

	s.Water()
	if !s.Patch().Watered {
		t.Error("watering should darken the patch")
	}
	if !s.Grow(4.5) {
		t.Fatal("Grow() on watered sapling should succeed")
	}
	if s.State() != Grown {
		t.Errorf("state = %v, expected grown", s.State())
	}
	if s.Scale() != before*4.5 {
		t.Errorf("scale = %v, expected %v", s.Scale(), before*4.5)
	}
	if s.Patch().Watered {
		t.Error("growing should dry the patch")
	}
	if b := s.Bounds(); b.Center() != s.Pos() || b.W != NativeSize*s.Scale() {
		t.Errorf("footprint %+v out of sync with position %v and scale %v", b, s.Pos(), s.Scale())
	}

	if s.Grow(4.5) || s.Scale() != before*4.5 {
		t.Error("Grow() on grown sapling should be a no-op")
	}
}

func TestSetPositionMovesFootprint(t *testing.T) {
	g := newTestGarden(1)
	s := g.SpawnSapling(g.Rooms[0], core.V(10, 10))

	s.SetPosition(core.V(300, 200))

	if s.Pos() != core.V(300, 200) || s.Bounds().Center() != core.V(300, 200) {
		t.Errorf("position %v and footprint centre %v should match", s.Pos(), s.Bounds().Center())
	}
}

func TestPlant(t *testing.T) {
	tests := []struct {
		name      string
		collected int
		tool      Tool
		click     core.Vec
		occupy    bool
		ok        bool
	}{
		{"plants on free patch", 2, Shovel, core.V(640, 448), false, true},
		{"click just inside radius", 1, Shovel, core.V(649.9, 448), false, true},
		{"click on radius", 1, Shovel, core.V(650, 448), false, false},
		{"empty hand", 0, Shovel, core.V(640, 448), false, false},
		{"wrong tool", 3, WateringCan, core.V(640, 448), false, false},
		{"patch occupied", 3, Shovel, core.V(640, 448), true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGarden(1)
			farm := g.Rooms[1]
			if tc.occupy {
				plantedAt(t, g, 0)
			}
			g.Collected = tc.collected
			saplings := len(farm.Saplings)

			s, ok := g.Plant(farm, tc.tool, tc.click)
			if ok != tc.ok {
				t.Fatalf("Plant() ok = %v, expected %v", ok, tc.ok)
			}

			if !ok {
				if g.Collected != tc.collected {
					t.Errorf("Collected = %d, expected unchanged %d", g.Collected, tc.collected)
				}
				if len(farm.Saplings) != saplings {
					t.Error("failed planting should not add a sapling")
				}
				if !tc.occupy && farm.Patches[0].Planted {
					t.Error("failed planting should not occupy the patch")
				}
				return
			}

			if g.Collected != tc.collected-1 {
				t.Errorf("Collected = %d, expected %d", g.Collected, tc.collected-1)
			}
			if s.State() != Planted || s.Patch() != farm.Patches[0] || s.Pos() != farm.Patches[0].Pos {
				t.Errorf("planted sapling = %v at %v in %v", s.State(), s.Pos(), s.Patch())
			}
			planted := 0
			for _, p := range farm.Patches {
				if p.Planted {
					planted++
				}
			}
			if planted != 1 {
				t.Errorf("%d patches planted, expected exactly 1", planted)
			}
		})
	}
}

func TestHarvest(t *testing.T) {
	tests := []struct {
		name      string
		grow      bool
		collected int
		tomatoes  int
		outcome   Outcome
	}{
		{"grown yields tomato", true, 0, 1, OutcomeTomato},
		{"planted returns to hand", false, 1, 0, OutcomeHarvested},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGarden(1)
			farm := g.Rooms[1]
			s := plantedAt(t, g, 1)
			if tc.grow {
				s.Water()
				s.Grow(g.Rules().GrowthFactor)
			}
			patch := s.Patch()

			if got := g.Harvest(farm, s); got != tc.outcome {
				t.Errorf("Harvest() = %v, expected %v", got, tc.outcome)
			}
			if g.Collected != tc.collected || g.Tomatoes != tc.tomatoes {
				t.Errorf("counters = (%d, %d), expected (%d, %d)", g.Collected, g.Tomatoes, tc.collected, tc.tomatoes)
			}
			if patch.Planted {
				t.Error("patch should be free after harvest")
			}
			for _, o := range farm.Saplings {
				if o == s {
					t.Error("harvested sapling still in room")
				}
			}
		})
	}

	t.Run("collected pickup", func(t *testing.T) {
		g := newTestGarden(1)
		field := g.Rooms[0]
		s := g.SpawnSapling(field, core.V(100, 100))
		if got := g.Harvest(field, s); got != OutcomeHarvested || g.Collected != 1 {
			t.Errorf("Harvest() = %v, collected %d", got, g.Collected)
		}
	})
}

func TestClickTargeting(t *testing.T) {
	g := newTestGarden(1)
	field := g.Rooms[0]
	field.Saplings = nil
	near := g.SpawnSapling(field, core.V(200, 200))
	twin := g.SpawnSapling(field, core.V(210, 200))
	g.SpawnSapling(field, core.V(400, 200))

	// Player too far away: nothing happens
	res := g.Click(field, Shovel, core.V(500, 500), core.V(205, 200))
	if res.Outcome != OutcomeNone || len(field.Saplings) != 3 {
		t.Fatalf("out of reach click = %v, saplings %d", res.Outcome, len(field.Saplings))
	}

	// Both near saplings qualify; only the first is dug up
	res = g.Click(field, Shovel, core.V(205, 150), core.V(205, 200))
	if res.Outcome != OutcomeHarvested || res.Pos != near.Pos() {
		t.Errorf("Click() = %+v, expected harvest of first sapling", res)
	}
	if len(field.Saplings) != 2 || field.Saplings[0] != twin {
		t.Errorf("expected only the first match removed, saplings left %d", len(field.Saplings))
	}
	if g.Collected != 1 {
		t.Errorf("Collected = %d, expected 1", g.Collected)
	}
}

func TestClickWatersEveryTarget(t *testing.T) {
	g := newTestGarden(1)
	farm := g.Rooms[1]
	a := plantedAt(t, g, 0)
	b := plantedAt(t, g, 1)

	// Click midway between the two patches, player standing below them
	res := g.Click(farm, WateringCan, core.V(672, 400), core.V(672, 448))

	if res.Outcome != OutcomeWatered || res.Watered != 2 {
		t.Errorf("Click() = %+v, expected two saplings watered", res)
	}
	if a.State() != Watered || b.State() != Watered {
		t.Errorf("states = %v, %v, expected both watered", a.State(), b.State())
	}
}

func TestClickShovelPlantsWhenNothingTargeted(t *testing.T) {
	g := newTestGarden(1)
	farm := g.Rooms[1]
	g.Collected = 1

	res := g.Click(farm, Shovel, core.V(0, 0), farm.Patches[0].Pos)

	if res.Outcome != OutcomePlanted {
		t.Fatalf("Click() = %v, expected planted", res.Outcome)
	}
	if g.Collected != 0 || !farm.Patches[0].Planted {
		t.Errorf("Collected = %d, patch planted = %v", g.Collected, farm.Patches[0].Planted)
	}
}

func TestShovelClickReplantsAfterHarvest(t *testing.T) {
	tests := []struct {
		name      string
		grown     bool
		inHand    int
		click     core.Vec
		harvest   Outcome
		outcome   Outcome
		collected int
		tomatoes  int
		replanted bool
	}{
		{"tomato then replant", true, 1, core.V(640, 448), OutcomeTomato, OutcomePlanted, 0, 1, true},
		{"tomato with empty hand", true, 0, core.V(640, 448), OutcomeTomato, OutcomeTomato, 0, 1, false},
		{"dug sapling goes straight back", false, 0, core.V(640, 448), OutcomeHarvested, OutcomePlanted, 0, 0, true},
		{"click beside the patch only digs", false, 0, core.V(600, 464), OutcomeHarvested, OutcomeHarvested, 1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGarden(1)
			farm := g.Rooms[1]
			s := plantedAt(t, g, 0)
			if tc.grown {
				s.Water()
				s.Grow(4.5)
			}
			g.Collected = tc.inHand

			res := g.Click(farm, Shovel, core.V(640, 420), tc.click)

			if res.Harvest != tc.harvest || res.Outcome != tc.outcome {
				t.Errorf("Click() harvest %v outcome %v, expected %v and %v", res.Harvest, res.Outcome, tc.harvest, tc.outcome)
			}
			if res.HarvestPos != farm.Patches[0].Pos {
				t.Errorf("HarvestPos = %v, expected the patch", res.HarvestPos)
			}
			if g.Collected != tc.collected || g.Tomatoes != tc.tomatoes {
				t.Errorf("Collected %d Tomatoes %d, expected %d and %d", g.Collected, g.Tomatoes, tc.collected, tc.tomatoes)
			}
			if farm.Patches[0].Planted != tc.replanted {
				t.Errorf("patch planted = %v, expected %v", farm.Patches[0].Planted, tc.replanted)
			}
			if tc.replanted {
				if len(farm.Saplings) != 1 || farm.Saplings[0] == s || farm.Saplings[0].State() != Planted {
					t.Errorf("expected a fresh planted sapling in place of the harvested one")
				}
			} else if len(farm.Saplings) != 0 {
				t.Errorf("saplings left %d, expected 0", len(farm.Saplings))
			}
		})
	}
}

func TestOpenTilesAndSpawnSelection(t *testing.T) {
	walls := make(map[Tile]bool)
	for _, w := range fieldWalls {
		walls[w] = true
	}
	open := OpenTiles(14, 10, walls)

	if want := 12*8 - len(fieldWalls); len(open) != want {
		t.Fatalf("len(open) = %d, expected %d", len(open), want)
	}

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, err := SelectSpawnPoints(rng, open, 2)
		if err != nil {
			t.Fatalf("seed %d: unexpected error %v", seed, err)
		}
		if len(got) != 2 || got[0] == got[1] {
			t.Fatalf("seed %d: expected 2 distinct tiles, got %v", seed, got)
		}
		for _, p := range got {
			if walls[p] {
				t.Errorf("seed %d: %v is a wall", seed, p)
			}
			if p.X < 1 || p.X > 12 || p.Y < 1 || p.Y > 8 {
				t.Errorf("seed %d: %v out of bounds", seed, p)
			}
		}
	}

	_, err := SelectSpawnPoints(rand.New(rand.NewSource(1)), open, len(open)+1)
	if !errors.Is(err, ErrInsufficientOpenSpace) {
		t.Errorf("oversized request err = %v, expected ErrInsufficientOpenSpace", err)
	}

	all, err := SelectSpawnPoints(rand.New(rand.NewSource(1)), open, len(open))
	if err != nil || len(all) != len(open) {
		t.Errorf("full request = %d tiles, err %v", len(all), err)
	}
}

func TestRespawnClampsToOpenSpace(t *testing.T) {
	// A 4x4 room has 4 interior tiles; walling three leaves one.
	tiny := NewRoom(0, "tiny", 4, 4, []Tile{{1, 1}, {1, 2}, {2, 1}})
	rules := DefaultRules()
	rules.SpawnFixed = 3
	g := New([]*Room{tiny}, rules, rand.New(rand.NewSource(1)), nil)

	if n := g.Respawn(tiny); n != 1 {
		t.Fatalf("Respawn() = %d, expected clamp to 1", n)
	}
	if got := tiny.Saplings[0].Pos(); got != core.V(2*64+30, 2*64+50) {
		t.Errorf("sapling at %v, expected (158, 178)", got)
	}
}

func TestAdvanceDay(t *testing.T) {
	g := newTestGarden(7)
	field, farm := g.Rooms[0], g.Rooms[1]

	if g.Day != 1 {
		t.Fatalf("new garden Day = %d, expected 1", g.Day)
	}
	if len(field.Saplings) < 1 || len(field.Saplings) > 3 {
		t.Fatalf("initial spawn = %d saplings, expected 1..3", len(field.Saplings))
	}
	oldField := append([]*Sapling(nil), field.Saplings...)

	watered := plantedAt(t, g, 0)
	watered.Water()
	dry := plantedAt(t, g, 1)

	res := g.Click(farm, WateringCan, core.V(0, 0), *farm.Bed)
	if res.Outcome != OutcomeSlept {
		t.Fatalf("bed click = %v, expected slept", res.Outcome)
	}

	if g.Day != 2 {
		t.Errorf("Day = %d, expected 2", g.Day)
	}
	if watered.State() != Grown {
		t.Errorf("watered sapling = %v, expected grown", watered.State())
	}
	if dry.State() != Planted {
		t.Errorf("dry sapling = %v, expected still planted", dry.State())
	}

	if len(field.Saplings) < 1 || len(field.Saplings) > 3 {
		t.Errorf("respawn = %d saplings, expected 1..3", len(field.Saplings))
	}
	for _, s := range field.Saplings {
		for _, o := range oldField {
			if s == o {
				t.Error("field saplings should be replaced, found a survivor")
			}
		}
		tx, ty := int(s.Pos().X)/64, int(s.Pos().Y)/64
		if field.IsWall(Tile{tx, ty}) || tx < 1 || tx > 12 || ty < 1 || ty > 8 {
			t.Errorf("respawned sapling on bad tile (%d, %d)", tx, ty)
		}
		if s.State() != Collected {
			t.Errorf("respawned sapling state = %v", s.State())
		}
	}
}

func TestBedOutOfRange(t *testing.T) {
	g := newTestGarden(1)
	farm := g.Rooms[1]

	res := g.Click(farm, Shovel, core.V(0, 0), farm.Bed.Add(core.V(80, 0)))
	if res.Outcome != OutcomeNone || g.Day != 1 {
		t.Errorf("click at bed radius = %v, day %d; expected nothing", res.Outcome, g.Day)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	play := func() Snapshot {
		g := newTestGarden(42)
		for i := 0; i < 5; i++ {
			g.AdvanceDay(g.Rooms[1])
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different gardens:\n%+v\n%+v", a, b)
	}
	if a.Day != 6 {
		t.Errorf("Day = %d, expected 6", a.Day)
	}
}

func TestToolNext(t *testing.T) {
	if WateringCan.Next() != Shovel || Shovel.Next() != WateringCan {
		t.Error("Next() should cycle between the two tools")
	}
}
