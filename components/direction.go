package components

import (
	"fmt"
	"strings"
)

// Direction is the heading of the snake
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Delta returns the unit vector for the direction, rows grow downward
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// ParseDirection maps "left", "right", "up" or "down" (any case) to a Direction
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	}
	return DirRight, fmt.Errorf("unknown direction %q", name)
}
