package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
)

// options carries command line settings that are not part of the config file
type options struct {
	snapshot      string
	snapshotScale float64
	seed          int64
}

// app wires one game session to a terminal screen. All game state is touched
// only from run's goroutine.
type app struct {
	cfg     *config.Config
	opts    options
	screen  tcell.Screen
	surface *render.ScreenSurface
	painter *render.Painter
	session *engine.Session
	sched   *engine.ClockScheduler
	loop    *engine.GameLoop
	input   *input.InputHandler
	sound   *audio.SoundManager

	events chan tcell.Event
	done   chan struct{}
}

// newApp builds the session and game loop; cfg must be validated. sound may be nil.
func newApp(cfg *config.Config, opts options, screen tcell.Screen, sound *audio.SoundManager) *app {
	palette, _ := cfg.RenderPalette()
	keys, _ := cfg.KeyMap()

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &app{
		cfg:     cfg,
		opts:    opts,
		screen:  screen,
		session: engine.NewSession(cfg.Grid.Width, cfg.Grid.Height, rand.New(rand.NewSource(seed))),
		sched:   engine.NewClockScheduler(),
		sound:   sound,
		events:  make(chan tcell.Event, 64),
		done:    make(chan struct{}),
	}

	a.surface = render.NewScreenSurface(screen, constants.PlayfieldOriginX, constants.PlayfieldOriginY, palette)
	a.painter = render.NewPainter(a.surface, palette)
	a.input = input.NewInputHandler(a.session, keys)

	a.loop = engine.NewGameLoop(a.session, a.sched, a.painter)
	a.loop.SetTickInterval(cfg.TickInterval())
	if sound != nil {
		a.loop.AddEventHandler(sound)
	}
	a.loop.AddEventHandler(engine.EventHandlerFunc(a.onGameEvent))

	return a
}

// run starts the game and serves events until the user quits or ctx ends
func (a *app) run(ctx context.Context, reloads <-chan *config.Config, reloadErrs <-chan error) {
	defer close(a.done)
	defer a.sched.Stop()

	core.Go(a.pollEvents)
	a.loop.Start()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-a.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				a.repaint()
			}
			if !a.input.HandleEvent(ev) {
				a.logQuit()
				return
			}

		case fn := <-a.sched.Ready():
			fn()

		case cfg, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			a.applyConfig(cfg)

		case err, ok := <-reloadErrs:
			if !ok {
				reloadErrs = nil
				continue
			}
			log.Printf("config reload rejected, keeping previous: %v", err)
		}
	}
}

// logQuit records where the session stood when the user left
func (a *app) logQuit() {
	res := a.loop.LastResult()
	log.Printf("Session %s quit at tick %d, score %d, game over %v, %d ticks delivered, %d overruns",
		a.session.ID, res.Tick, a.session.Score(), res.GameOver, a.sched.Fired(), a.loop.Overruns())
}

// pollEvents forwards terminal events until the screen is finalised
func (a *app) pollEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

// repaint redraws the current state after a resize
func (a *app) repaint() {
	a.surface.Sync()
	var err error
	if a.session.Running() {
		err = a.painter.PresentFrame(a.session)
	} else {
		err = a.painter.PresentFinal(a.session)
	}
	if err != nil {
		log.Printf("repaint: %v", err)
	}
}

// applyConfig takes the live-reloadable parts of cfg
func (a *app) applyConfig(cfg *config.Config) {
	palette, err := cfg.RenderPalette()
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	keys, err := cfg.KeyMap()
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}

	a.painter.SetPalette(palette)
	a.input.SetKeyMap(keys)
	if a.sound != nil {
		a.sound.SetEnabled(cfg.Audio.Enabled)
		a.sound.SetVolume(cfg.MasterVolume())
	}
	if cfg.Grid != a.cfg.Grid || cfg.Game != a.cfg.Game {
		log.Printf("config reload: grid and game settings apply on next start")
	}
	a.cfg = cfg
	a.repaint()
}

// soundConfig converts the audio section for audio.SoundManager
func soundConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.MasterVolume()
	return ac
}

// onGameEvent writes the final board image when a snapshot path is set
func (a *app) onGameEvent(ev engine.GameEvent) {
	if ev.Type != engine.EventGameOver || a.opts.snapshot == "" {
		return
	}
	err := render.SaveSnapshot(a.session, a.painter.Palette(), a.cfg.Grid.CellSize, a.opts.snapshot, a.opts.snapshotScale)
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	log.Printf("snapshot written to %s", a.opts.snapshot)
}
