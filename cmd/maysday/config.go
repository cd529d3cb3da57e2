package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maysday/internal/config"
	"github.com/vovakirdan/maysday/internal/layout"
)

var flagLayoutDump bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or layout",
	Long: `Print the embedded default game config, or with --rooms the
embedded room layout. Save either as a starting point for --config
or --layout.

Examples:
  maysday config > ~/.maysday/configs/garden.yaml
  maysday config --rooms > rooms.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if flagLayoutDump {
			os.Stdout.Write(layout.DefaultYAML())
			return
		}
		os.Stdout.Write(config.GetDefaultYAML(gameID))
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config and layout files",
	Long: `Load the game config and room layout the same way a session would
and report any problem.

Examples:
  maysday check --config ./garden.yaml --layout ./rooms.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	configCmd.Flags().BoolVar(&flagLayoutDump, "rooms", false, "Print the room layout instead of the game config")
}

func runCheck(_ *cobra.Command, _ []string) error {
	if _, err := config.LoadGarden(flagConfig); err != nil {
		return err
	}
	lay, err := layout.Load(flagLayout)
	if err != nil {
		return err
	}

	for i, r := range lay.Rooms {
		fmt.Printf("room %d %-10s %dx%d tiles, %d walls, %d dirt patches\n",
			i, r.ID, r.Width, r.Height, len(r.AllWalls()), len(r.DirtPatches))
	}
	fmt.Println("ok")
	return nil
}
