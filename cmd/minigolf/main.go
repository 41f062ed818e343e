// minigolf is a terminal minigolf game with a planar ball-physics engine.
//
// Usage:
//
//	minigolf play [mode]     - Play a round (or practice) on a course
//	minigolf menu            - Start menu to pick a mode or a starting hole
//	minigolf serve           - Start SSH server for remote play
//	minigolf scores [course] - Show best rounds and hole bests for a course
//	minigolf courses         - List available courses
//	minigolf list            - List play modes
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/minigolf.db)
//	--config <path>      - Custom minigolf config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--course <id>        - Course to play (default: classic)
//	--course-dir <dir>   - Extra directory of course YAML files
//	--mute               - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minigolf/internal/audio"
	"github.com/vovakirdan/tui-minigolf/internal/config"
	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf"
	"github.com/vovakirdan/tui-minigolf/internal/games/minigolf/course"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagCourse     string
	flagCourseDir  string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minigolf",
	Short: "Terminal minigolf",
	Long: `Minigolf is a top-down minigolf game for the terminal.

Aim with the arrow keys or drag with the mouse, then putt the ball into
the cup in as few strokes as possible.

Available commands:
  play     - Play a round directly
  menu     - Interactive menu with hole selection
  serve    - Start SSH server for remote play
  scores   - View best rounds and hole bests
  courses  - List available courses
  list     - List play modes

Examples:
  minigolf play
  minigolf play minigolf_practice --hole 3
  minigolf menu --course-dir ./courses
  minigolf serve --ssh :2222
  minigolf scores classic`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/minigolf.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minigolf config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagCourse, "course", course.ClassicID, "Course ID to play")
	rootCmd.PersistentFlags().StringVar(&flagCourseDir, "course-dir", "", "Directory with extra course YAML files")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(coursesCmd)
}

// selectCourse applies the course and config flags to the game package and
// returns the course that will be played.
func selectCourse() (course.Course, error) {
	minigolf.SetConfigPath(flagConfig)
	minigolf.SetDifficultyPreset(flagDifficulty)
	minigolf.SetCourse(flagCourseDir, flagCourse)

	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return course.Course{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	c, err := course.NewLoader(flagCourseDir).LoadByID(flagCourse)
	if err != nil {
		return course.Course{}, fmt.Errorf("cannot load course %q: %w", flagCourse, err)
	}
	return c, nil
}

// knownCourses returns every course for the scoreboard, falling back to
// the built-in ones when the course directory cannot be read.
func knownCourses() []course.Course {
	courses, err := course.NewLoader(flagCourseDir).LoadAll()
	if err != nil {
		courses, _ = course.Builtin() //nolint:errcheck // embedded data is tested
	}
	return courses
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns the logger for local play. The game owns the terminal,
// so only errors reach stderr unless a log file is given.
func newLogger() (*log.Logger, io.Closer) {
	if flagLogFile == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "minigolf"})
		logger.SetLevel(log.ErrorLevel)
		return logger, io.NopCloser(nil)
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "minigolf"})
		logger.SetLevel(log.ErrorLevel)
		return logger, io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "minigolf",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// openSounds returns the speaker, or a silent player when muted, disabled
// in config or without an audio device.
func openSounds(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}

	cfg, err := config.LoadGolf(flagConfig)
	if err != nil {
		cfg = config.DefaultGolfConfig()
	}
	if !cfg.Audio.Enabled {
		return audio.Nop{}
	}

	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return audio.Nop{}
	}
	return sm
}
