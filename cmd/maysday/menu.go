package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maysday/internal/platform/tui"
	"github.com/vovakirdan/maysday/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu: play, browse seasons or quit",
	Long: `Start Maysday in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a session ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  maysday menu
  maysday menu --fps 30
  maysday menu --db ./seasons.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	setupGame(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	title := "Maysday"

	for {
		res, err := tui.RunMenu(gameID, title, store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(gameID, title, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			game, err := registry.Create(gameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger, HoldTicks: flagHoldTicks}); err != nil {
				return err
			}
			// A fixed --seed would replay the same farm every round
			if flagSeed == 0 {
				cfg.Seed = 0
			}

		default:
			return nil
		}
	}
}
