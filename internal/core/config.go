package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (strokes for golf, lower is better)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventStroke    EventType = iota // A shot was taken or the stroke count reset
	EventBallStop                   // The ball came to rest
	EventHoleSunk                   // The ball dropped into the cup
	EventSinkSound                  // The cup sound should play
	EventRoundOver                  // The last hole of the course was completed
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventStroke:
		return "Stroke"
	case EventBallStop:
		return "BallStop"
	case EventHoleSunk:
		return "HoleSunk"
	case EventSinkSound:
		return "SinkSound"
	case EventRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// Event is a notification handed from the game to the platform.
// Fields not meaningful for a type are zero.
type Event struct {
	Type    EventType
	Course  string // Course identifier
	Hole    int    // Hole number, 1-based
	Par     int
	Strokes int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred, in order.
type StepResult struct {
	State  GameState
	Events []Event
}
