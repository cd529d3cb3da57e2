// Package layout loads the hand-authored room layouts: border walls with
// exits, interior walls, dirt patches, the bed and spawn rules.
// One parameterised definition replaces per-room setup code.
package layout

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maysday/internal/core"
	"github.com/vovakirdan/maysday/internal/garden"
)

//go:embed rooms.yaml
var defaultRooms []byte

// RoomCount is the number of rooms the session links together.
const RoomCount = 2

// Layout is a parsed layout file.
type Layout struct {
	Tile  float64 `yaml:"tile"`
	Rooms []Room  `yaml:"rooms"`
}

// Room is one room definition.
type Room struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Background  string       `yaml:"background"`
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	Exits       Exits        `yaml:"exits"`
	Walls       [][2]int     `yaml:"walls"`
	DirtPatches [][2]float64 `yaml:"dirt_patches,omitempty"`
	Bed         *[2]float64  `yaml:"bed,omitempty"`
	Spawn       Spawn        `yaml:"spawn"`
}

// Exits lists the border rows left open on each side.
type Exits struct {
	Left  []int `yaml:"left,omitempty"`
	Right []int `yaml:"right,omitempty"`
}

// Spawn controls where and when saplings appear.
type Spawn struct {
	OnSetup      bool `yaml:"on_setup"`
	RespawnDaily bool `yaml:"respawn_daily"`
}

// DefaultYAML returns the embedded layout source.
func DefaultYAML() []byte {
	return defaultRooms
}

// Default returns the embedded layout.
func Default() (*Layout, error) {
	return Parse(defaultRooms)
}

// Load reads a layout file, or the embedded default when path is empty.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: reading %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout: %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: yaml unmarshal: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that the layout describes two well-formed rooms.
func (l *Layout) Validate() error {
	if l.Tile <= 0 {
		return fmt.Errorf("layout: invalid tile size: %v", l.Tile)
	}
	if len(l.Rooms) != RoomCount {
		return fmt.Errorf("layout: expected %d rooms, got %d", RoomCount, len(l.Rooms))
	}

	seen := make(map[string]bool)
	for i, r := range l.Rooms {
		if r.ID == "" {
			return fmt.Errorf("layout: room %d has no id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("layout: duplicate room id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Width < 3 || r.Height < 3 {
			return fmt.Errorf("layout: room %q: invalid dimensions: %dx%d", r.ID, r.Width, r.Height)
		}
		for _, w := range r.Walls {
			if w[0] < 0 || w[0] >= r.Width || w[1] < 0 || w[1] >= r.Height {
				return fmt.Errorf("layout: room %q: wall (%d, %d) out of bounds", r.ID, w[0], w[1])
			}
		}
		for _, row := range append(append([]int(nil), r.Exits.Left...), r.Exits.Right...) {
			if row < 1 || row >= r.Height-1 {
				return fmt.Errorf("layout: room %q: exit row %d out of bounds", r.ID, row)
			}
		}
		for _, p := range r.DirtPatches {
			if p[0] <= 0 || p[0] >= float64(r.Width) || p[1] <= 0 || p[1] >= float64(r.Height) {
				return fmt.Errorf("layout: room %q: dirt patch (%v, %v) out of bounds", r.ID, p[0], p[1])
			}
		}
		if b := r.Bed; b != nil {
			if b[0] <= 0 || b[0] >= float64(r.Width) || b[1] <= 0 || b[1] >= float64(r.Height) {
				return fmt.Errorf("layout: room %q: bed (%v, %v) out of bounds", r.ID, b[0], b[1])
			}
		}
	}

	if len(l.Rooms[0].Exits.Right) == 0 {
		return fmt.Errorf("layout: room %q needs a right exit", l.Rooms[0].ID)
	}
	if len(l.Rooms[1].Exits.Left) == 0 {
		return fmt.Errorf("layout: room %q needs a left exit", l.Rooms[1].ID)
	}
	return nil
}

// BorderWalls returns the perimeter tiles minus the exit gaps.
func (r Room) BorderWalls() []garden.Tile {
	left := make(map[int]bool)
	for _, y := range r.Exits.Left {
		left[y] = true
	}
	right := make(map[int]bool)
	for _, y := range r.Exits.Right {
		right[y] = true
	}

	var walls []garden.Tile
	for x := 0; x < r.Width; x++ {
		walls = append(walls, garden.Tile{X: x, Y: 0}, garden.Tile{X: x, Y: r.Height - 1})
	}
	for y := 1; y < r.Height-1; y++ {
		if !left[y] {
			walls = append(walls, garden.Tile{X: 0, Y: y})
		}
		if !right[y] {
			walls = append(walls, garden.Tile{X: r.Width - 1, Y: y})
		}
	}
	return walls
}

// AllWalls returns border and interior walls.
func (r Room) AllWalls() []garden.Tile {
	walls := r.BorderWalls()
	for _, w := range r.Walls {
		walls = append(walls, garden.Tile{X: w[0], Y: w[1]})
	}
	return walls
}

// WorldWidth returns the width of room i in world units.
func (l *Layout) WorldWidth(i int) float64 {
	return float64(l.Rooms[i].Width) * l.Tile
}

// Build creates fresh garden rooms from the layout.
// Tile coordinates of patches and the bed are scaled to world units.
func (l *Layout) Build() []*garden.Room {
	rooms := make([]*garden.Room, len(l.Rooms))
	for i, def := range l.Rooms {
		r := garden.NewRoom(i, def.ID, def.Width, def.Height, def.AllWalls())
		if def.Name != "" {
			r.Name = def.Name
		}
		r.Background = def.Background
		r.SpawnOnSetup = def.Spawn.OnSetup
		r.RespawnDaily = def.Spawn.RespawnDaily

		for _, p := range def.DirtPatches {
			r.AddPatch(core.V(p[0]*l.Tile, p[1]*l.Tile))
		}
		if def.Bed != nil {
			bed := core.V(def.Bed[0]*l.Tile, def.Bed[1]*l.Tile)
			r.Bed = &bed
		}
		rooms[i] = r
	}
	return rooms
}

// WallBoxes returns the collision boxes of room i in world units.
func (l *Layout) WallBoxes(i int) []core.Box {
	walls := l.Rooms[i].AllWalls()
	boxes := make([]core.Box, len(walls))
	for j, w := range walls {
		boxes[j] = core.Box{X: float64(w.X) * l.Tile, Y: float64(w.Y) * l.Tile, W: l.Tile, H: l.Tile}
	}
	return boxes
}
