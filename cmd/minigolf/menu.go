package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/platform/tui"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start minigolf with a mode and hole picker",
	Long: `Start minigolf in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
"Start at Hole..." lists every hole with its par and your best score.
After a round ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  minigolf menu
  minigolf menu --fps 30
  minigolf menu --course windmill --course-dir ./courses`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	c, err := selectCourse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := newLogger()
	defer logFile.Close() //nolint:errcheck

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	sounds := openSounds(logger)
	svc := tui.Services{Store: store, Sounds: sounds, Logger: logger}
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, c, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, knownCourses(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		minigolf.SetStartHole(menuResult.StartHole)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each round unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, svc, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	// Cleanup
	sounds.Close()
	if store != nil {
		store.Close()
	}
}
