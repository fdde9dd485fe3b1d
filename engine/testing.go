package engine

import (
	"math/rand"

	"github.com/lixenwraith/snake/components"
)

// zeroSource is a rand.Source that always yields 0, so food respawns at (0,0)
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

// NewTestSession creates a session from a tail-to-head body with food fixed at foodPos.
// Respawns land on (0,0) so tests can predict them.
func NewTestSession(body []components.Position, dir components.Direction, foodPos components.Position, width, height int) *Session {
	snake := components.NewSnake(body, dir)
	food := components.NewFood(foodPos, width, height, rand.New(zeroSource{}))
	return NewSessionWith(snake, food, width, height)
}
