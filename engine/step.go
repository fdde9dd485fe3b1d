package engine

import "github.com/lixenwraith/snake/components"

// TickResult describes what one Step did to the session
type TickResult struct {
	Tick     uint64
	Ate      bool
	EatenAt  components.Position
	GameOver bool
	Score    int
}

// Step applies one tick to the session: move, consume, test for self-collision.
// It only mutates session state; presentation and scheduling belong to the caller.
// Stepping an ended session changes nothing.
func Step(s *Session) TickResult {
	if !s.running {
		return TickResult{Tick: s.ticks, GameOver: true, Score: s.Score()}
	}

	s.ticks++
	res := TickResult{Tick: s.ticks}

	s.Snake.Step()

	// Consumption is tested after the move, growth lands on the next Step
	if food := s.Food.Position(); s.Snake.Occupies(food) {
		s.Food.Respawn()
		s.Snake.Grow()
		s.Snake.AddScore(1)
		res.Ate = true
		res.EatenAt = food
	}

	if s.Snake.IsSelfColliding() {
		s.running = false
		res.GameOver = true
	}

	res.Score = s.Score()
	return res
}
