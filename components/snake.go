package components

// Snake is an ordered body of segments, tail first and head last.
// All mutation goes through its methods and happens on the game goroutine.
type Snake struct {
	body          []Position
	direction     Direction
	pendingGrowth int
	score         int
}

// NewSnake creates a snake from a tail-to-head body. The body must not be empty.
func NewSnake(body []Position, dir Direction) *Snake {
	if len(body) == 0 {
		panic("components: snake body must have at least one segment")
	}
	b := make([]Position, len(body))
	copy(b, body)
	return &Snake{
		body:      b,
		direction: dir,
	}
}

// SetDirection records the heading used by the next Step.
// Reversal is allowed and will make the snake bite itself when longer than one segment.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Step moves the head one cell along the current direction.
// Pending growth keeps the tail in place for this step, otherwise the tail is dropped.
func (s *Snake) Step() {
	dx, dy := s.direction.Delta()
	s.body = append(s.body, s.Head().Add(dx, dy))

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	s.body = s.body[1:]
}

// Occupies reports whether any segment is on pos
func (s *Snake) Occupies(pos Position) bool {
	for _, seg := range s.body {
		if seg == pos {
			return true
		}
	}
	return false
}

// IsSelfColliding reports whether the head shares a cell with any other segment.
// Meaningful after Step.
func (s *Snake) IsSelfColliding() bool {
	head := s.Head()
	for _, seg := range s.body[:len(s.body)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// Grow queues one segment of growth for the next Step
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// AddScore adds n points
func (s *Snake) AddScore(n int) {
	s.score += n
}

// Head returns the last segment
func (s *Snake) Head() Position {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the segments, tail first
func (s *Snake) Body() []Position {
	b := make([]Position, len(s.body))
	copy(b, s.body)
	return b
}

// Segments calls fn for every segment tail to head without copying
func (s *Snake) Segments(fn func(Position)) {
	for _, seg := range s.body {
		fn(seg)
	}
}

func (s *Snake) Len() int             { return len(s.body) }
func (s *Snake) Direction() Direction { return s.direction }
func (s *Snake) PendingGrowth() int   { return s.pendingGrowth }
func (s *Snake) Score() int           { return s.score }
