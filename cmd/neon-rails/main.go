package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/neon-rails/audio"
	"github.com/lixenwraith/neon-rails/clock"
	"github.com/lixenwraith/neon-rails/config"
	"github.com/lixenwraith/neon-rails/engine"
	"github.com/lixenwraith/neon-rails/scores"
	"github.com/lixenwraith/neon-rails/terminal"
)

const appName = "neon-rails"

var (
	configFlag   = flag.String("config", "", "Config file (.toml, .yaml)")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256, none")
	fpsFlag      = flag.Int("fps", 0, "Target frames per second")
	uncappedFlag = flag.Bool("uncapped", false, "Run the frame loop without pacing")
	trackFlag    = flag.String("track", "", "Track: wave, circuit")
	seedFlag     = flag.Uint64("seed", 0, "Race seed; 0 picks one from the clock")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Disable sound")
	watchFlag    = flag.Bool("watch", false, "Reload the config file when it changes")
)

// frameWriter lets the engine write whole frames through the terminal
type frameWriter struct {
	term terminal.Terminal
}

func (w frameWriter) Write(p []byte) (int, error) {
	if err := w.term.WriteFrame(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEON-RAILS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	code := run(cfg)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// loadConfig reads the config file if any, then applies flags on top
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.Color = *colorFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "uncapped":
			cfg.Uncapped = *uncappedFlag
		case "track":
			cfg.Track = *trackFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Mute = *muteFlag
		}
	})
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if *watchFlag && *configFlag == "" {
		return nil, errors.New("-watch requires -config")
	}
	return cfg, nil
}

// run owns the terminal for the session and returns the exit code
func run(cfg *config.Config) int {
	mode := cfg.ColorMode()
	term := terminal.New(mode)
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	sound := audio.NewPlayer(cfg.Mute)
	if err := sound.Init(); err != nil {
		log.Printf("[audio] %v (continuing without audio)", err)
	}
	defer sound.Close()

	var store *scores.Store
	if cfg.Scores {
		m, err := scores.Open(appName)
		if err != nil {
			log.Printf("[scores] %v (records kept in memory)", err)
		}
		store = scores.NewStore(m)
	}

	width, height := term.Size()
	gc, err := engine.NewGameContext(engine.Options{
		Config:     cfg,
		ConfigPath: *configFlag,
		Out:        frameWriter{term: term},
		Width:      width,
		Height:     height,
		Mode:       mode,
		Sound:      sound,
		Scores:     store,
	})
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	if *watchFlag {
		watcher, err := config.NewWatcher(*configFlag, gc.Queue)
		if err != nil {
			log.Printf("[config] %v (hot reload disabled)", err)
		} else {
			defer watcher.Close()
		}
	}

	rate, maxDelta := cfg.ClockRate()
	fc := clock.New(clock.Options{TargetRate: rate, MaxDelta: maxDelta})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			select {
			case ev, ok := <-term.Events():
				if !ok {
					return
				}
				if ev.Type == terminal.EventError {
					log.Printf("[input] %v", ev.Err)
					continue
				}
				gc.MapInput(ev)
				if ev.Type == terminal.EventClosed {
					return
				}
			case <-ctx.Done():
				fc.Stop()
				return
			}
		}
	}()

	err = fc.Run(ctx, gc.Step)
	term.Fini()

	var stepErr *clock.StepError
	switch {
	case err == nil, errors.Is(err, engine.ErrQuit):
		log.Printf("[main] exit after %d frames", gc.FrameNumber.Load())
		return 0
	case errors.As(err, &stepErr) && stepErr.Panic != nil:
		fmt.Fprintf(os.Stderr, "\x1b[31mGAME CRASHED: %v\x1b[0m\n", stepErr.Panic)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stepErr.Stack)
		return 1
	default:
		fmt.Fprintf(os.Stderr, "neon-rails: %v\n", err)
		return 1
	}
}
