package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rockfall/audio"
	"github.com/lixenwraith/rockfall/config"
	"github.com/lixenwraith/rockfall/core"
	"github.com/lixenwraith/rockfall/engine"
	"github.com/lixenwraith/rockfall/input"
	"github.com/lixenwraith/rockfall/level"
	"github.com/lixenwraith/rockfall/render"
	"github.com/lixenwraith/rockfall/service"
	"github.com/lixenwraith/rockfall/status"
)

var (
	configFlag = flag.String("config", "", "YAML settings file")
	keymapFlag = flag.String("keymap", "", "YAML keymap overrides")
	levelFlag  = flag.Int("level", 1, "Level to start on")
	levelsFlag = flag.String("levels", "", "Directory of screen.N.txt files, default is the bundled levels")
	watchFlag  = flag.Bool("watch", false, "Reload the current level when its file changes")
	debugFlag  = flag.Bool("debug", false, "Write logs/rockfall.log")
	strictFlag = flag.Bool("strict", false, "Panic on interactions missing from the rule table")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeys(*keymapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Keymap error: %v\n", err)
		os.Exit(2)
	}

	var src level.Source = level.Embedded()
	if cfg.LevelsDir != "" {
		src = level.NewDirSource(cfg.LevelsDir)
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
	// Normal exit terminal cleanup
	defer screen.Fini()
	// Crash path cleanup for engine goroutines started with core.Go
	core.SetCrashReset(screen.Fini)

	sound := audio.NewSoundManager(cfg.AudioConfig())
	renderer := render.NewTerminalRenderer(screen)
	reg := status.NewRegistry()
	session := engine.NewSession(src, engine.Options{
		Strict:      cfg.StrictRules,
		PropelDelay: cfg.PropelDelayTicks,
		Status:      reg,
	}, engine.Sinks{Render: renderer, Audio: sound, Message: renderer})
	session.OnLoad(renderer.Load)

	if err := session.Start(cfg.StartLevel); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Cannot start level %d: %v\n", cfg.StartLevel, err)
		os.Exit(1)
	}

	scheduler := engine.NewClockScheduler(session, engine.NewMonotonicTimeProvider(), cfg.TickInterval, reg)

	var changes <-chan string
	hub := service.NewHub()
	hub.Register(&service.Func{
		ID: "audio",
		OnStart: func() error {
			if err := sound.Initialize(); err != nil {
				log.Printf("Audio initialization failed: %v (continuing without audio)", err)
			}
			return nil
		},
		OnStop: func() error {
			sound.Cleanup()
			return nil
		},
	})
	if cfg.WatchLevels && cfg.LevelsDir != "" {
		var watcher *level.Watcher
		hub.Register(&service.Func{
			ID: "watcher",
			OnStart: func() error {
				w, err := level.NewWatcher(cfg.LevelsDir)
				if err != nil {
					log.Printf("Level watcher disabled: %v", err)
					return nil
				}
				watcher = w
				changes = w.Events
				return nil
			},
			OnStop: func() error {
				if watcher == nil {
					return nil
				}
				return watcher.Close()
			},
		})
	}
	hub.Register(&service.Func{
		ID:        "scheduler",
		DependsOn: []string{"audio"},
		OnStart: func() error {
			scheduler.Start()
			return nil
		},
		OnStop: func() error {
			scheduler.Stop()
			return nil
		},
	})
	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	g := &game{
		screen:    screen,
		session:   session,
		scheduler: scheduler,
		renderer:  renderer,
		machine:   input.NewMachine(keys, cfg.InputDelay, cfg.InputRepeatDelay),
		sound:     sound,
	}
	g.run(changes)

	log.Printf("Exiting after %d ticks: %v", scheduler.TickCount(), reg.Snapshot())
}

// loadConfig layers explicitly set flags over the configuration file and environment
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.StartLevel = *levelFlag
		case "levels":
			cfg.LevelsDir = *levelsFlag
		case "watch":
			cfg.WatchLevels = *watchFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "strict":
			cfg.StrictRules = *strictFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})
	return cfg, cfg.Validate()
}

func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(keys, override), nil
}
