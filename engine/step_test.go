package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/constants"
)

func line(n int) []components.Position {
	out := make([]components.Position, n)
	for i := range out {
		out[i] = components.Position{X: i, Y: 0}
	}
	return out
}

// TestStepConsumesFood covers the consumption scenario: head lands on food at (4,0)
func TestStepConsumesFood(t *testing.T) {
	s := NewTestSession(line(4), components.DirRight, components.Position{X: 4, Y: 0}, 40, 30)

	res := Step(s)

	if !res.Ate {
		t.Fatal("Ate = false, want true")
	}
	if res.EatenAt != (components.Position{X: 4, Y: 0}) {
		t.Errorf("EatenAt = %v, want (4,0)", res.EatenAt)
	}
	if s.Food.Position() == (components.Position{X: 4, Y: 0}) {
		t.Error("food did not respawn")
	}
	if s.Score() != 1 || res.Score != 1 {
		t.Errorf("score = %d (result %d), want 1", s.Score(), res.Score)
	}
	if s.Snake.PendingGrowth() != 1 {
		t.Errorf("PendingGrowth() = %d, want 1", s.Snake.PendingGrowth())
	}
	// Growth is deferred: length unchanged on the eating tick
	if s.Snake.Len() != 4 {
		t.Errorf("Len() = %d on eating tick, want 4", s.Snake.Len())
	}

	Step(s)
	if s.Snake.Len() != 5 {
		t.Errorf("Len() = %d after next tick, want 5", s.Snake.Len())
	}
}

// TestStepFoodOnBodyIsConsumed verifies consumption tests the whole body, not only the head
func TestStepFoodOnBodyIsConsumed(t *testing.T) {
	s := NewTestSession(line(4), components.DirRight, components.Position{X: 2, Y: 0}, 40, 30)

	res := Step(s)

	if !res.Ate {
		t.Error("food under the body was not consumed")
	}
}

// TestStepSelfCollisionEndsSession covers the reversal scenario through the loop step
func TestStepSelfCollisionEndsSession(t *testing.T) {
	s := NewTestSession(line(4), components.DirRight, components.Position{X: 20, Y: 20}, 40, 30)

	if res := Step(s); res.GameOver {
		t.Fatal("game over on first tick")
	}

	s.Snake.SetDirection(components.DirLeft)
	res := Step(s)

	if !res.GameOver {
		t.Fatal("GameOver = false after reversal, want true")
	}
	if s.Running() {
		t.Error("session still running after self-collision")
	}

	// Ended sessions are frozen
	before := s.Snake.Body()
	res = Step(s)
	if !res.GameOver || res.Tick != 2 {
		t.Errorf("Step on ended session = %+v, want GameOver at tick 2", res)
	}
	if got := s.Snake.Body(); len(got) != len(before) || got[len(got)-1] != before[len(before)-1] {
		t.Error("Step mutated an ended session")
	}
}

// TestStepIntoVacatedTail verifies the tail leaves its cell before the collision test
func TestStepIntoVacatedTail(t *testing.T) {
	body := []components.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	s := NewTestSession(body, components.DirUp, components.Position{X: 0, Y: 0}, 40, 30)

	// Head (0,1) moves up onto (0,0): tail (0,0) is dropped first, so no collision
	res := Step(s)
	if res.GameOver {
		t.Fatal("moving into the vacated tail cell is not a collision")
	}
	if !res.Ate {
		t.Fatal("food at (0,0) not consumed")
	}
}

// TestNewSessionReferenceOpening verifies the default session layout
func TestNewSessionReferenceOpening(t *testing.T) {
	s := NewSession(constants.GridWidth, constants.GridHeight, rand.New(rand.NewSource(3)))

	want := line(4)
	got := s.Snake.Body()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Body() = %v, want %v", got, want)
		}
	}
	if s.Snake.Direction() != components.DirRight {
		t.Errorf("Direction() = %v, want right", s.Snake.Direction())
	}
	if !s.Food.Position().InBounds(constants.GridWidth, constants.GridHeight) {
		t.Errorf("food %v out of bounds", s.Food.Position())
	}
	if !s.Running() || s.Score() != 0 || s.Ticks() != 0 {
		t.Errorf("fresh session: running=%v score=%d ticks=%d", s.Running(), s.Score(), s.Ticks())
	}
	if s.ID.String() == "" {
		t.Error("session has no ID")
	}
}

// TestStepLengthProperty checks the growth/length invariants over a long random run
func TestStepLengthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewSession(10, 10, rand.New(rand.NewSource(5)))
	dirs := []components.Direction{components.DirLeft, components.DirRight, components.DirUp, components.DirDown}

	for i := 0; i < 500 && s.Running(); i++ {
		d := dirs[rng.Intn(len(dirs))]
		cx, cy := s.Snake.Direction().Delta()
		if nx, ny := d.Delta(); nx == -cx && ny == -cy && s.Snake.Len() > 1 {
			continue
		}
		s.Snake.SetDirection(d)

		lenBefore := s.Snake.Len()
		growBefore := s.Snake.PendingGrowth()
		headBefore := s.Snake.Head()

		res := Step(s)

		dx, dy := d.Delta()
		if s.Snake.Head() != headBefore.Add(dx, dy) {
			t.Fatalf("tick %d: head %v, want %v", res.Tick, s.Snake.Head(), headBefore.Add(dx, dy))
		}

		wantLen := lenBefore
		wantGrow := growBefore
		if growBefore > 0 {
			wantLen++
			wantGrow--
		}
		if res.Ate {
			wantGrow++
		}
		if s.Snake.Len() != wantLen || s.Snake.PendingGrowth() != wantGrow {
			t.Fatalf("tick %d: len=%d grow=%d, want len=%d grow=%d",
				res.Tick, s.Snake.Len(), s.Snake.PendingGrowth(), wantLen, wantGrow)
		}

		headCount := 0
		for _, p := range s.Snake.Body() {
			if p == s.Snake.Head() {
				headCount++
			}
		}
		if (headCount > 1) != res.GameOver {
			t.Fatalf("tick %d: head appears %d times but GameOver=%v", res.Tick, headCount, res.GameOver)
		}
	}
}

func TestNewSessionRejectsEmptyGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSession(0, 0) did not panic")
		}
	}()
	NewSession(0, 0, rand.New(rand.NewSource(1)))
}
