package garden

import "github.com/vovakirdan/maysday/internal/core"

// Tile is a grid coordinate. Row 0 is the bottom row.
type Tile struct {
	X, Y int
}

// Room is one play area: static walls, dirt patches, an optional bed and the
// saplings currently lying or growing in it.
type Room struct {
	Index      int
	ID         string
	Name       string
	Background string

	Width, Height int // in tiles

	Patches  []*DirtPatch
	Saplings []*Sapling
	Bed      *core.Vec

	RespawnDaily bool // replace saplings every morning
	SpawnOnSetup bool // scatter saplings when the garden is created

	walls    []Tile
	wallSet  map[Tile]bool
	openTile []Tile
}

// NewRoom creates a room with the given wall tiles.
// The wall set is read-only afterwards.
func NewRoom(index int, id string, width, height int, walls []Tile) *Room {
	r := &Room{
		Index:   index,
		ID:      id,
		Name:    id,
		Width:   width,
		Height:  height,
		walls:   append([]Tile(nil), walls...),
		wallSet: make(map[Tile]bool, len(walls)),
	}
	for _, w := range walls {
		r.wallSet[w] = true
	}
	r.openTile = OpenTiles(width, height, r.wallSet)
	return r
}

// Walls returns the wall tiles in declaration order.
func (r *Room) Walls() []Tile {
	return r.walls
}

// IsWall reports whether the tile is blocked.
func (r *Room) IsWall(t Tile) bool {
	return r.wallSet[t]
}

// OpenTiles returns the interior tiles free for spawning.
func (r *Room) OpenTiles() []Tile {
	return r.openTile
}

// AddPatch appends a dirt patch at p and returns it.
func (r *Room) AddPatch(p core.Vec) *DirtPatch {
	d := &DirtPatch{ID: len(r.Patches), Pos: p}
	r.Patches = append(r.Patches, d)
	return d
}

func (r *Room) remove(s *Sapling) {
	for i, o := range r.Saplings {
		if o == s {
			r.Saplings = append(r.Saplings[:i], r.Saplings[i+1:]...)
			return
		}
	}
}

// clearSaplings drops every sapling, freeing any patches they held.
func (r *Room) clearSaplings() {
	for _, s := range r.Saplings {
		s.release()
	}
	r.Saplings = nil
}
