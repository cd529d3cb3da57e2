package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML GardenConfig
	if err := yaml.Unmarshal(GetDefaultYAML("maysday"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultGardenConfig() {
		t.Errorf("embedded defaults drifted from DefaultGardenConfig():\n%+v\n%+v", fromYAML, DefaultGardenConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadGardenCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.yaml")
	data := "spawn:\n  fixed: 2\nplayer:\n  speed: 8\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGarden(path)
	if err != nil {
		t.Fatalf("LoadGarden() error: %v", err)
	}

	if cfg.Spawn.Fixed != 2 || cfg.Player.Speed != 8 {
		t.Errorf("overrides not applied: fixed=%d speed=%v", cfg.Spawn.Fixed, cfg.Player.Speed)
	}
	// Untouched sections keep defaults
	if cfg.Interaction.Reach != 80 || cfg.Growth.Factor != 4.5 {
		t.Errorf("defaults lost: reach=%v factor=%v", cfg.Interaction.Reach, cfg.Growth.Factor)
	}
}

func TestLoadGardenErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "player: [", "failed to parse"},
		{"negative speed", "player:\n  speed: -1\n", "player.speed"},
		{"inverted spawn range", "spawn:\n  min: 3\n  max: 1\n", "spawn range"},
		{"zero render cells", "render:\n  cells_per_tile_x: 0\n", "render"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadGarden(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadGarden() error = %v, expected mention of %q", err, tc.want)
			}
		})
	}

	if _, err := LoadGarden(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadGardenFallsBackToDefaults(t *testing.T) {
	// Run from an empty directory with no home config so the embedded file wins.
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadGarden("")
	if err != nil {
		t.Fatalf("LoadGarden(\"\") error: %v", err)
	}
	if cfg != DefaultGardenConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadGardenLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "garden.yaml"), []byte("growth:\n  factor: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadGarden("")
	if err != nil {
		t.Fatalf("LoadGarden(\"\") error: %v", err)
	}
	if cfg.Growth.Factor != 2 {
		t.Errorf("Growth.Factor = %v, expected local override 2", cfg.Growth.Factor)
	}
}
