package course

import (
	"fmt"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a course is playable:
//   - it has an ID and at least one hole
//   - hole numbers are unique and par is at least 1
//   - cups have a positive radius and walls a positive footprint
//   - neither the tee nor the cup sits inside a wall
func Validate(c Course) error {
	if c.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "course has no id"}
	}
	if len(c.Holes) == 0 {
		return ValidationError{Code: "NO_HOLES", Message: fmt.Sprintf("course %s has no holes", c.ID)}
	}

	seen := make(map[int]bool, len(c.Holes))
	for _, h := range c.Holes {
		if seen[h.Number] {
			return ValidationError{
				Code:    "DUPLICATE_HOLE",
				Message: fmt.Sprintf("hole %d appears more than once", h.Number),
			}
		}
		seen[h.Number] = true

		if err := validateHole(h); err != nil {
			return err
		}
	}

	return nil
}

func validateHole(h Hole) error {
	if h.Par < 1 {
		return ValidationError{
			Code:    "INVALID_PAR",
			Message: fmt.Sprintf("hole %d has par %d, expected at least 1", h.Number, h.Par),
		}
	}
	if h.Cup.Radius <= 0 {
		return ValidationError{
			Code:    "INVALID_CUP",
			Message: fmt.Sprintf("hole %d cup radius %.2f must be positive", h.Number, h.Cup.Radius),
		}
	}

	for i, w := range h.Walls {
		if w.Width <= 0 || w.Depth <= 0 || w.Height < 0 {
			return ValidationError{
				Code:    "INVALID_WALL",
				Message: fmt.Sprintf("hole %d wall %d has size %.2fx%.2fx%.2f", h.Number, i+1, w.Width, w.Depth, w.Height),
			}
		}

		box := w.Box(0)
		if box.ContainsXZ(h.Start) {
			return ValidationError{
				Code:    "START_IN_WALL",
				Message: fmt.Sprintf("hole %d tee is inside wall %d", h.Number, i+1),
			}
		}
		if box.ContainsXZ(h.Cup.Position) {
			return ValidationError{
				Code:    "CUP_IN_WALL",
				Message: fmt.Sprintf("hole %d cup is inside wall %d", h.Number, i+1),
			}
		}
	}

	return nil
}
