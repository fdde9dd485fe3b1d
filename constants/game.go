package constants

import "time"

// Game Loop Timing Constants
const (
	// GameUpdateInterval is the delay between two game ticks (~20 ticks/second)
	GameUpdateInterval = 50 * time.Millisecond

	// FirstTickDelay is the delay before the first tick; the loop starts immediately
	FirstTickDelay = 0 * time.Millisecond
)

// Grid Constants (reference configuration)
const (
	// GridWidth is the number of columns on the playfield
	GridWidth = 40

	// GridHeight is the number of rows on the playfield
	GridHeight = 30

	// CellSize is the edge length of one grid cell on the raster canvas, in pixels
	CellSize = 20
)

// Initial snake: four segments on the top row heading right, tail first
var InitialSnakeBody = [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

// InitialFoodPosition is where food sits before the first respawn
var InitialFoodPosition = [2]int{0, 0}
