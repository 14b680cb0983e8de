// leftright is a terminal reaction-time game: after a short countdown one of
// two panels lights up, and you press the matching arrow key as fast as you can.
//
// Usage:
//
//	leftright                - Play (same as "leftright play")
//	leftright play [game]    - Play a game (default: reaction)
//	leftright list           - List available games
//	leftright keys           - Show key bindings
//	leftright config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible side draws
//	--config <path>       - Use a specific config file
//	--log-file <path>     - Write logs to a file (default: no logs)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/leftright/internal/games/reaction"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
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
	Use:   "leftright",
	Short: "Left/Right - a reaction-time game for your terminal",
	Long: `Left/Right measures how fast you react.

Press Space to start a round. After a one second countdown one of the two
panels lights up: press the arrow key for that side as fast as you can.
Pressing anything during the countdown is a false start.

Examples:
  leftright
  leftright --seed 42
  leftright --config ./my-keys.yaml --log-file leftright.log
  leftright keys`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
