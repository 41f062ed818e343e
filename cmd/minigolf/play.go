package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/platform/tui"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var flagHole int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play minigolf",
	Long: `Play a round of minigolf on the selected course.

Modes:
  minigolf           - One round, the score is saved after the last hole
  minigolf_practice  - Cycle through the holes forever

Controls:
  Left/Right, A/D  - Aim
  Up/Down, W/S     - Shot power
  Space            - Putt
  Mouse drag       - Pull back from the ball and release to putt
  Enter            - Next hole
  R                - Back to the tee
  T                - Toggle trajectory preview
  P                - Pause
  Esc              - Back (when paused or finished)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow greens and a wide cup, stays easy
  normal - Greens speed up as you complete holes
  hard   - Fast greens from the first hole
  fixed  - No progression, stays at config's initial level

Examples:
  minigolf play
  minigolf play --hole 4
  minigolf play minigolf_practice --difficulty hard
  minigolf play --course windmill --course-dir ./courses
  minigolf play --config ./my-minigolf.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHole, "hole", 0, "Hole to start on (1-based)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "minigolf"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'minigolf list' to see available modes.")
		os.Exit(1)
	}

	c, err := selectCourse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'minigolf courses' to see available courses.")
		os.Exit(1)
	}
	if flagHole < 0 || flagHole > len(c.Holes) {
		fmt.Fprintf(os.Stderr, "Error: course %q has holes 1-%d\n", c.ID, len(c.Holes))
		os.Exit(1)
	}
	minigolf.SetStartHole(flagHole)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := newLogger()
	defer logFile.Close() //nolint:errcheck

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sounds := openSounds(logger)
	svc := tui.Services{Store: store, Sounds: sounds, Logger: logger}

	runErr := tui.Run(game, svc, runtimeConfig())

	sounds.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
