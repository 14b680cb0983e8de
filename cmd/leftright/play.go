package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/leftright/internal/config"
	"github.com/vovakirdan/leftright/internal/core"
	"github.com/vovakirdan/leftright/internal/games/reaction"
	"github.com/vovakirdan/leftright/internal/platform/tui"
	"github.com/vovakirdan/leftright/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the reaction game starts.

Controls (defaults, see 'leftright keys'):
  Space        - Start a round
  Left/H       - Choose the left panel
  Right/L      - Choose the right panel
  Ctrl+S       - Save a text screenshot
  Esc/Q/Ctrl+C - Quit

Examples:
  leftright play
  leftright play reaction --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := reaction.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'leftright list' to see available games", gameID)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not close log file: %v\n", err)
		}
	}()
	logger.Info("config loaded", "source", source)

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	rt.TickRate = cfg.Display.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}

	// Get terminal size early; Bubble Tea sends the real size on start anyway
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "game", gameID, "size", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH), "tick_rate", rt.TickRate)

	if err := tui.Run(game, rt, tui.Options{Config: cfg, Logger: logger}); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("bye")
	return nil
}
