package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpenko/snake-tui/internal/config"
	"github.com/mkarpenko/snake-tui/internal/core"
	"github.com/mkarpenko/snake-tui/internal/platform/tui"
	"github.com/mkarpenko/snake-tui/internal/snake"
	"github.com/mkarpenko/snake-tui/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrow keys - Steer the snake
  X/x        - Quit (press again on the game-over screen to exit)
  R          - Restart (after game over)

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(snake.New(cfg), store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
