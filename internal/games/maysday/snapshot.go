package maysday

import "github.com/vovakirdan/maysday/internal/garden"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Room    int
	Tool    garden.Tool
	PlayerX float64 // centre
	PlayerY float64
	Paused  bool
	Garden  garden.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	c := g.player.Center()
	snap := Snapshot{
		Tick:    g.tick,
		Room:    g.room,
		Tool:    g.tool,
		PlayerX: c.X,
		PlayerY: c.Y,
		Paused:  g.paused,
	}
	if g.garden != nil {
		snap.Garden = g.garden.Snapshot()
	}
	return snap
}
