// maysday is a small farming game for the terminal or a desktop window.
//
// Usage:
//
//	maysday                  - Start menu (play, seasons, quit)
//	maysday play             - Play in the terminal
//	maysday window           - Play in a desktop window
//	maysday scores           - Print recent seasons
//	maysday config           - Print the default config or layout
//	maysday check            - Validate config and layout files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.maysday/maysday.db)
//	--config <path>      - Game config YAML
//	--layout <path>      - Room layout YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maysday/internal/games/maysday"
	"github.com/vovakirdan/maysday/internal/storage"
)

const gameID = "maysday"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLayout   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maysday",
	Short: "Maysday - grow tomatoes in your terminal",
	Long: `Maysday is a small farming game. Dig up mystery saplings in the
meadow, plant them in the farm's dirt patches, water them and sleep
in the bed to watch them grow into tomatoes.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Start menu (default)
  scores   - Print recent seasons
  config   - Print the default config or layout
  check    - Validate config and layout files

Examples:
  maysday
  maysday play --seed 42
  maysday window --fps 30
  maysday play --layout ./rooms.yaml --log-file maysday.log`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.maysday/maysday.db", "Path to seasons database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLayout, "layout", "", "Path to custom room layout YAML")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the session logger. Without --log-file, output goes to
// fallback; the terminal frontends pass io.Discard since they own the screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          gameID,
		Level:           level,
	})
	return logger, closer, nil
}

// setupGame applies global flags to the game package before a session.
func setupGame(logger *log.Logger) {
	maysday.SetConfigPath(flagConfig)
	maysday.SetLayoutPath(flagLayout)
	maysday.SetLogger(logger)
}

// openStore opens the seasons database. Sessions still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open seasons database: %v\n", err)
		logger.Warn("seasons database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
