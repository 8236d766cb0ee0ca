package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/dungeon-crawler/audio"
	"github.com/lixenwraith/dungeon-crawler/config"
	"github.com/lixenwraith/dungeon-crawler/core"
	"github.com/lixenwraith/dungeon-crawler/engine"
	"github.com/lixenwraith/dungeon-crawler/event"
	"github.com/lixenwraith/dungeon-crawler/render"
	"github.com/lixenwraith/dungeon-crawler/status"
)

var errQuit = errors.New("quit")

func main() {
	// Top-level panic recovery to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dungeon-crawler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML settings file")
	debug := flag.Bool("debug", false, "write logs to logs/dungeon-crawler.log")
	seed := flag.Int64("seed", 0, "arena seed (0 = time based)")
	mute := flag.Bool("mute", false, "start with audio muted")
	tick := flag.Duration("tick", 0, "simulation tick interval override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *debug {
		cfg.Debug = true
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *tick > 0 {
		cfg.TickInterval = *tick
	}
	cfg.Audio.ApplyEnv()

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("dungeon-crawler starting, tick=%v frame=%v seed=%d", cfg.TickInterval, cfg.FrameInterval, cfg.Simulation.Seed)

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	reg := status.NewRegistry()
	session, err := engine.NewSession(cfg.Simulation, engine.NewMonotonicTimeProvider(), reg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()
	core.SetCrashScreen(screen)
	screen.HideCursor()

	sound := audio.NewSoundManager(&cfg.Audio)
	sound.SetMuted(*mute)
	sound.InitializeOrLog()
	defer sound.Cleanup()

	scheduler := engine.NewClockScheduler(session, cfg.TickInterval)
	scheduler.RegisterEventHandler(sound)
	scheduler.RegisterEventHandler(engine.EventHandlerFunc(logEvent))

	orchestrator := render.NewGameRenderer(screen, reg)
	view := render.NewViewState()

	g := &game{
		scheduler: scheduler,
		view:      view,
		keys:      keys,
		sound:     sound,
		screen:    screen,
	}

	scheduler.Start()
	defer scheduler.Stop()

	grp, ctx := errgroup.WithContext(context.Background())

	// Input poller, PollEvent returns nil once the screen is finalized
	grp.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			if !g.handleEvent(ev) {
				return errQuit
			}
		}
	})

	// Frame loop, redraws on its own ticker and after every simulation tick
	grp.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		defer fini()

		frameTicker := time.NewTicker(cfg.FrameInterval)
		defer frameTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-frameTicker.C:
			case <-scheduler.Updates():
			}
			orchestrator.Frame(scheduler.View(), view)
		}
	})

	if err := grp.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	log.Printf("dungeon-crawler exiting after %d ticks", scheduler.TickCount())
	return nil
}

// logEvent records gameplay events in the debug log
func logEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionLost:
		log.Printf("[session] tick=%d %s reason=%s", ev.Tick, ev.Type, ev.Reason)
	default:
		log.Printf("[session] tick=%d %s index=%d amount=%d", ev.Tick, ev.Type, ev.Index, ev.Amount)
	}
}
