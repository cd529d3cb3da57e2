// Package config provides YAML-based game configuration loading for Maysday.
package config

import "fmt"

// GardenConfig contains all configuration for the farming game.
type GardenConfig struct {
	Player      PlayerConfig      `yaml:"player"`
	Interaction InteractionConfig `yaml:"interaction"`
	Growth      GrowthConfig      `yaml:"growth"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Messages    MessagesConfig    `yaml:"messages"`
	Render      RenderConfig      `yaml:"render"`
}

// PlayerConfig defines the player's start position and movement.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"` // world units per tick
	Size   float64 `yaml:"size"`  // collision box edge
}

// InteractionConfig defines the distances that gate clicks.
type InteractionConfig struct {
	Reach float64 `yaml:"reach"`
	Click float64 `yaml:"click"`
	Plant float64 `yaml:"plant"`
	Bed   float64 `yaml:"bed"`
}

// GrowthConfig defines how saplings look as they grow.
type GrowthConfig struct {
	Factor       float64 `yaml:"factor"`
	SaplingScale float64 `yaml:"sapling_scale"`
}

// SpawnConfig defines how many saplings appear each morning and where in
// their tile they sit.
type SpawnConfig struct {
	Min     int     `yaml:"min"`
	Max     int     `yaml:"max"`
	Fixed   int     `yaml:"fixed"` // > 0 overrides Min/Max
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// MessagesConfig defines how long overlay messages stay up.
type MessagesConfig struct {
	DaySeconds    float64 `yaml:"day_seconds"`
	FadeSeconds   float64 `yaml:"fade_seconds"`
	PickupSeconds float64 `yaml:"pickup_seconds"`
}

// RenderConfig defines how many screen cells one tile covers.
type RenderConfig struct {
	CellsPerTileX int `yaml:"cells_per_tile_x"`
	CellsPerTileY int `yaml:"cells_per_tile_y"`
}

// Validate reports the first nonsensical value.
func (c GardenConfig) Validate() error {
	switch {
	case c.Player.Speed <= 0:
		return fmt.Errorf("config: player.speed must be positive, got %v", c.Player.Speed)
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player.size must be positive, got %v", c.Player.Size)
	case c.Interaction.Reach <= 0, c.Interaction.Click <= 0, c.Interaction.Plant <= 0, c.Interaction.Bed <= 0:
		return fmt.Errorf("config: interaction distances must be positive")
	case c.Growth.Factor <= 0 || c.Growth.SaplingScale <= 0:
		return fmt.Errorf("config: growth factor and sapling scale must be positive")
	case c.Spawn.Min < 0 || c.Spawn.Max < c.Spawn.Min:
		return fmt.Errorf("config: spawn range %d..%d is invalid", c.Spawn.Min, c.Spawn.Max)
	case c.Spawn.Fixed < 0:
		return fmt.Errorf("config: spawn.fixed must not be negative, got %d", c.Spawn.Fixed)
	case c.Render.CellsPerTileX <= 0 || c.Render.CellsPerTileY <= 0:
		return fmt.Errorf("config: render cells per tile must be positive")
	}
	return nil
}
