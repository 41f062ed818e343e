package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List available courses",
	Long: `Shows the built-in courses plus any course files found under --course-dir.
A course file with the same ID as a built-in course replaces it.

Examples:
  minigolf courses
  minigolf courses --course-dir ./courses`,
	Run: runCourses,
}

func runCourses(_ *cobra.Command, _ []string) {
	courses, err := course.NewLoader(flagCourseDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading courses: %v\n", err)
		os.Exit(1)
	}

	maxIDLen := 2 // "ID" header
	for _, c := range courses {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-3s  %-20s  %s\n", maxIDLen, "ID", "Holes", "Par", "Name", "Source")
	fmt.Printf("  %-*s  %-5s  %-3s  %-20s  %s\n", maxIDLen, "--", "-----", "---", "----", "------")

	for _, c := range courses {
		source := "built-in"
		if c.FilePath != "" {
			source = c.FilePath
		}
		fmt.Printf("  %-*s  %-5d  %-3d  %-20s  %s\n", maxIDLen, c.ID, len(c.Holes), c.Par(), c.Name, source)
	}

	fmt.Println()
	fmt.Println("Run 'minigolf play --course <id>' to play a course.")
}
