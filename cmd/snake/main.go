package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
)

var (
	configFlag        = flag.String("config", "", "Path to TOML config file (watched for changes)")
	debugFlag         = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	snapshotFlag      = flag.String("snapshot", "", "Write the final board as PNG to this path on game over")
	snapshotScaleFlag = flag.Float64("snapshot-scale", 1, "Scale factor for the snapshot image")
	seedFlag          = flag.Int64("seed", 0, "Food RNG seed, 0 = config or time based")
	sampleConfigFlag  = flag.Bool("sample-config", false, "Print a default config file and exit")
)

func main() {
	flag.Parse()

	if *sampleConfigFlag {
		fmt.Print(config.Sample())
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// Panics anywhere restore the terminal before the trace is printed
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	sound := audio.NewSoundManager(soundConfig(cfg))
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		sound = nil
	} else {
		defer sound.Cleanup()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		reloads    <-chan *config.Config
		reloadErrs <-chan error
	)
	if *configFlag != "" {
		reloads, reloadErrs, err = config.Watch(ctx, *configFlag)
		if err != nil {
			log.Printf("Config watch unavailable: %v", err)
		}
	}

	opts := options{
		snapshot:      *snapshotFlag,
		snapshotScale: *snapshotScaleFlag,
		seed:          *seedFlag,
	}
	newApp(cfg, opts, screen, sound).run(ctx, reloads, reloadErrs)
}
