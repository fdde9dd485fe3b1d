package engine

import "github.com/lixenwraith/snake/components"

// EventType represents the type of game event
type EventType int

const (
	// EventFoodEaten signals the snake consumed the food this tick.
	// Position is the cell the food occupied before respawning.
	EventFoodEaten EventType = iota

	// EventGameOver signals the snake collided with itself and the session ended.
	// Score is final.
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventFoodEaten:
		return "FoodEaten"
	case EventGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// GameEvent is emitted by the game loop after a tick's state update
type GameEvent struct {
	Type     EventType
	Tick     uint64
	Score    int
	Position components.Position
}

// EventHandler reacts to game events on the game goroutine
type EventHandler interface {
	HandleEvent(ev GameEvent)
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ev GameEvent)

func (f EventHandlerFunc) HandleEvent(ev GameEvent) { f(ev) }
