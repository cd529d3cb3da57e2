package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the default game configuration.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		Player: PlayerConfig{
			StartX: 100,
			StartY: 100,
			Speed:  5,
			Size:   40,
		},
		Interaction: InteractionConfig{
			Reach: 80,
			Click: 50,
			Plant: 10,
			Bed:   80,
		},
		Growth: GrowthConfig{
			Factor:       4.5,
			SaplingScale: 0.5,
		},
		Spawn: SpawnConfig{
			Min:     1,
			Max:     3,
			OffsetX: 30,
			OffsetY: 50,
		},
		Messages: MessagesConfig{
			DaySeconds:    3,
			FadeSeconds:   1,
			PickupSeconds: 2,
		},
		Render: RenderConfig{
			CellsPerTileX: 4,
			CellsPerTileY: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maysday":
		return defaultGardenYAML
	default:
		return nil
	}
}
