package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/snake/constants"
)

// FramePresenter is the rendering step. It reads the session after each update;
// it must not mutate it.
type FramePresenter interface {
	PresentFrame(s *Session) error
	PresentGameOver(s *Session) error
}

// GameLoop runs discrete, non-overlapping ticks through a one-shot Scheduler
type GameLoop struct {
	session   *Session
	scheduler Scheduler
	presenter FramePresenter
	handlers  []EventHandler

	tickInterval time.Duration
	started      bool
	lastResult   TickResult

	// Ticks whose update and present took longer than the interval
	clock    TimeProvider
	overruns uint64
}

// NewGameLoop wires a session to its scheduler and presenter.
// A nil presenter runs the loop headless.
func NewGameLoop(session *Session, scheduler Scheduler, presenter FramePresenter) *GameLoop {
	return &GameLoop{
		session:      session,
		scheduler:    scheduler,
		presenter:    presenter,
		tickInterval: constants.GameUpdateInterval,
		clock:        NewMonotonicTimeProvider(),
	}
}

// SetTimeProvider replaces the clock used to time ticks
func (l *GameLoop) SetTimeProvider(clock TimeProvider) {
	if clock != nil {
		l.clock = clock
	}
}

// Overruns returns how many ticks took longer than the tick interval
func (l *GameLoop) Overruns() uint64 { return l.overruns }

// AddEventHandler registers a handler, must be called before Start()
func (l *GameLoop) AddEventHandler(h EventHandler) {
	l.handlers = append(l.handlers, h)
}

// SetTickInterval sets the delay between ticks, must be called before Start()
func (l *GameLoop) SetTickInterval(d time.Duration) {
	if d > 0 {
		l.tickInterval = d
	}
}

// TickInterval returns the delay between ticks
func (l *GameLoop) TickInterval() time.Duration { return l.tickInterval }

// LastResult returns the outcome of the most recent tick
func (l *GameLoop) LastResult() TickResult { return l.lastResult }

// Start arms the first tick. Calling it twice has no effect.
func (l *GameLoop) Start() {
	if l.started {
		return
	}
	l.started = true
	log.Printf("Session %s started: %dx%d grid, tick %v", l.session.ID, l.session.Width, l.session.Height, l.tickInterval)
	l.scheduler.After(constants.FirstTickDelay, l.tick)
}

// tick is one scheduled callback: update, present, notify, then re-arm or stop
func (l *GameLoop) tick() {
	start := l.clock.Now()
	res := Step(l.session)
	l.lastResult = res

	// Presented after Step, so an eating tick shows the respawned food, not the eaten cell
	if l.presenter != nil {
		if err := l.presenter.PresentFrame(l.session); err != nil {
			log.Printf("Present frame %d failed: %v", res.Tick, err)
		}
	}

	if res.Ate {
		log.Printf("Tick %d: food eaten at (%d,%d), score %d", res.Tick, res.EatenAt.X, res.EatenAt.Y, res.Score)
		l.emit(GameEvent{Type: EventFoodEaten, Tick: res.Tick, Score: res.Score, Position: res.EatenAt})
	}

	if res.GameOver {
		log.Printf("Session %s over after %d ticks, score %d", l.session.ID, res.Tick, res.Score)
		if l.presenter != nil {
			if err := l.presenter.PresentGameOver(l.session); err != nil {
				log.Printf("Present game over failed: %v", err)
			}
		}
		l.emit(GameEvent{Type: EventGameOver, Tick: res.Tick, Score: res.Score, Position: l.session.Snake.Head()})
		return
	}

	if elapsed := l.clock.Now().Sub(start); elapsed > l.tickInterval {
		l.overruns++
		log.Printf("Tick %d overran: %v > %v", res.Tick, elapsed, l.tickInterval)
	}

	l.scheduler.After(l.tickInterval, l.tick)
}

func (l *GameLoop) emit(ev GameEvent) {
	for _, h := range l.handlers {
		h.HandleEvent(ev)
	}
}
