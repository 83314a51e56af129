package internal

import (
	"errors"
	"fmt"

	"github.com/mdpkit/bellman/internal/types"
)

// ErrCursorRange is returned when a history index falls outside the
// sequence.
var ErrCursorRange = errors.New("history: cursor out of range")

// History is the linear sequence of derivation steps plus the active
// cursor. Branching is by truncation: advancing from anywhere but the end
// discards the steps after the cursor. The zero value is not usable; use
// NewHistory.
type History struct {
	steps  []types.Step
	cursor int
}

// NewHistory returns a history holding only the fixed start step.
func NewHistory() *History {
	return &History{steps: []types.Step{types.Start()}}
}

// Reset discards everything and returns to the start step.
func (h *History) Reset() {
	h.steps = []types.Step{types.Start()}
	h.cursor = 0
}

// Advance truncates the sequence to [0..cursor], appends step, and moves
// the cursor onto it. This is the only operation that mutates the
// sequence.
func (h *History) Advance(step types.Step) {
	h.steps = append(h.steps[:h.cursor+1], step)
	h.cursor = len(h.steps) - 1
}

// GoTo moves the cursor without touching the sequence.
func (h *History) GoTo(index int) error {
	if index < 0 || index >= len(h.steps) {
		return fmt.Errorf("go to %d of %d steps: %w", index, len(h.steps), ErrCursorRange)
	}
	h.cursor = index
	return nil
}

// Current returns the step under the cursor.
func (h *History) Current() types.Step {
	return h.steps[h.cursor]
}

// Cursor returns the active index.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of steps.
func (h *History) Len() int {
	return len(h.steps)
}

// Steps returns a copy of the sequence; mutating it does not affect the
// history.
func (h *History) Steps() []types.Step {
	return append([]types.Step(nil), h.steps...)
}
