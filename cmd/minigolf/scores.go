package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [course]",
	Short: "Show best rounds and hole bests for a course",
	Long: `Display the 10 best rounds and the personal best on every hole of a course.
Lower is better. The course defaults to --course.

Examples:
  minigolf scores
  minigolf scores classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	courseID := flagCourse
	if len(args) == 1 {
		courseID = args[0]
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.BestRounds(courseID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}
	holes, err := store.HoleBests(courseID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving hole bests: %v\n", err)
		return
	}

	fmt.Printf("Best Rounds - %s\n", courseID)
	fmt.Println()

	if len(rounds) == 0 && len(holes) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minigolf play --course %s' to set the first score!\n", courseID)
		return
	}

	if len(rounds) == 0 {
		fmt.Println("  No completed rounds.")
	} else {
		fmt.Printf("  %-4s  %-7s  %-4s  %-10s  %s\n", "Rank", "Strokes", "+/-", "Mode", "Date")
		fmt.Printf("  %-4s  %-7s  %-4s  %-10s  %s\n", "----", "-------", "---", "----", "----")
		for i, r := range rounds {
			dateStr := r.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-7d  %-4s  %-10s  %s\n", i+1, r.Strokes, minigolf.FormatDiff(r.Diff()), r.GameID, dateStr)
		}
	}

	if len(holes) > 0 {
		fmt.Println()
		fmt.Println("Hole Bests")
		fmt.Println()
		fmt.Printf("  %-4s  %-3s  %-4s  %-5s  %s\n", "Hole", "Par", "Best", "Avg", "Played")
		fmt.Printf("  %-4s  %-3s  %-4s  %-5s  %s\n", "----", "---", "----", "---", "------")
		for _, h := range holes {
			fmt.Printf("  %-4d  %-3d  %-4d  %-5.1f  %d\n", h.Hole, h.Par, h.Best, h.AvgStrokes, h.Played)
		}
	}

	stats, err := store.GetCourseStats(courseID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Holes: %d  Holes in one: %d\n", stats.RoundsPlayed, stats.HolesPlayed, stats.HolesInOne)
		if stats.RoundsPlayed > 0 {
			fmt.Printf("Best: %d  Average: %.1f\n", stats.BestRound, stats.AvgStrokes)
		}
	}
}
