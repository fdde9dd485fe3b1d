package components

import (
	"fmt"
	"math/rand"
	"time"
)

// Food is the single edible item on the grid.
// Respawn does not avoid the snake body.
type Food struct {
	pos    Position
	width  int
	height int
	rng    *rand.Rand
}

// NewFood places food at pos on a width x height grid.
// A nil rng is replaced by a time-seeded source. Panics unless both sizes are positive.
func NewFood(pos Position, width, height int, rng *rand.Rand) *Food {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("food grid must be positive, got %dx%d", width, height))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Food{
		pos:    pos,
		width:  width,
		height: height,
		rng:    rng,
	}
}

// Respawn moves the food to a uniformly random cell, each axis drawn independently
func (f *Food) Respawn() {
	f.pos = Position{
		X: f.rng.Intn(f.width),
		Y: f.rng.Intn(f.height),
	}
}

// Position returns the current cell
func (f *Food) Position() Position {
	return f.pos
}
