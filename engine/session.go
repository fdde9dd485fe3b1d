package engine

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/constants"
)

// Session owns all mutable game state for one run of the game
type Session struct {
	ID uuid.UUID

	Snake *components.Snake
	Food  *components.Food

	// Grid dimensions used for food placement and rendering
	Width, Height int

	running bool
	ticks   uint64
}

// NewSession creates the reference opening: a four-segment snake on the top row
// heading right, food respawned once from (0,0)
func NewSession(width, height int, rng *rand.Rand) *Session {
	body := make([]components.Position, len(constants.InitialSnakeBody))
	for i, c := range constants.InitialSnakeBody {
		body[i] = components.Position{X: c[0], Y: c[1]}
	}

	food := components.NewFood(
		components.Position{X: constants.InitialFoodPosition[0], Y: constants.InitialFoodPosition[1]},
		width, height, rng,
	)
	food.Respawn()

	return NewSessionWith(components.NewSnake(body, components.DirRight), food, width, height)
}

// NewSessionWith wraps an existing snake and food into a running session
func NewSessionWith(snake *components.Snake, food *components.Food, width, height int) *Session {
	return &Session{
		ID:      uuid.New(),
		Snake:   snake,
		Food:    food,
		Width:   width,
		Height:  height,
		running: true,
	}
}

// Running reports whether the session still accepts ticks
func (s *Session) Running() bool { return s.running }

// Score returns the snake's score
func (s *Session) Score() int { return s.Snake.Score() }

// Ticks returns the number of ticks applied
func (s *Session) Ticks() uint64 { return s.ticks }

// End marks the session as finished
func (s *Session) End() { s.running = false }
