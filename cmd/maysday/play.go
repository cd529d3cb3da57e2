package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maysday/internal/core"
	"github.com/vovakirdan/maysday/internal/platform/tui"
	"github.com/vovakirdan/maysday/internal/platform/window"
	"github.com/vovakirdan/maysday/internal/registry"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a new farm in the terminal.

Controls:
  WASD/Arrows  - Walk
  Mouse click  - Use the selected tool on a cell
  E/Space      - Use the selected tool on the nearest thing in reach
  1/2/Tab      - Select watering can / shovel / next tool
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Terminals report key repeats but not releases, so a movement key counts
as held for --hold ticks after its last repeat.

Examples:
  maysday play
  maysday play --seed 42
  maysday play --hold 12`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a new farm in a desktop window. Controls are the same as in
the terminal, with real key releases.

Examples:
  maysday window
  maysday window --fps 30`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a movement key stays held after a repeat")
}

// terminalConfig builds the runtime config from flags and the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	setupGame(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, terminalConfig(), tui.Options{
		Store:     store,
		Logger:    logger,
		HoldTicks: flagHoldTicks,
	})
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	setupGame(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ScreenW = 72 // map plus a margin for the HUD
	cfg.ScreenH = 26

	return window.Run(game, cfg, window.Options{Store: store, Logger: logger})
}
