package garden

import (
	"errors"
	"math/rand"
)

// ErrInsufficientOpenSpace is returned when more spawn points are requested
// than there are open tiles.
var ErrInsufficientOpenSpace = errors.New("garden: insufficient open space")

// OpenTiles lists the tiles with 1 <= x < w-1 and 1 <= y < h-1 that are not
// excluded. The order is column by column, bottom to top.
func OpenTiles(w, h int, excluded map[Tile]bool) []Tile {
	var open []Tile
	for x := 1; x < w-1; x++ {
		for y := 1; y < h-1; y++ {
			t := Tile{X: x, Y: y}
			if !excluded[t] {
				open = append(open, t)
			}
		}
	}
	return open
}

// SelectSpawnPoints draws n distinct tiles from open, uniformly and without
// replacement. open is not modified.
func SelectSpawnPoints(rng *rand.Rand, open []Tile, n int) ([]Tile, error) {
	if n < 0 {
		n = 0
	}
	if n > len(open) {
		return nil, ErrInsufficientOpenSpace
	}

	pool := append([]Tile(nil), open...)
	// Partial Fisher-Yates: the first n slots end up as the sample.
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}
