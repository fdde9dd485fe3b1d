package components

// Position is a grid cell, X = column, Y = row. Coordinates are unbounded.
type Position struct {
	X int
	Y int
}

// Add returns p offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies inside [0,width-1] x [0,height-1]
func (p Position) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
