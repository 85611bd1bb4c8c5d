package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/bug-snake/audio"
	"github.com/lixenwraith/bug-snake/config"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/input"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/render"
	"github.com/lixenwraith/bug-snake/status"
	"github.com/lixenwraith/bug-snake/system"
	"github.com/lixenwraith/bug-snake/vmath"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file (default: ./bug-snake.toml if present)")
	debugFlag   = flag.Bool("debug", false, "Write logs/bug-snake.log and start with the debug overlay")
	seedFlag    = flag.Uint64("seed", 0, "RNG seed, 0 seeds from the clock")
	symbolsFlag = flag.String("symbols", "", "Glyph set: auto, unicode, ascii")
	noColorFlag = flag.Bool("no-color", false, "Disable the 256-color palette")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	dumpFlag    = flag.Bool("print-config", false, "Print the effective config and exit")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, src, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bug-snake: %v\n", err)
		return 1
	}
	applyFlags(&cfg)

	if *dumpFlag {
		text, err := config.Encode(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bug-snake: %v\n", err)
			return 1
		}
		fmt.Print(text)
		return 0
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	if src != "" {
		log.Printf("[MAIN] config loaded from %s", src)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "bug-snake: stdout is not a terminal")
		return 1
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bug-snake: terminal size: %v\n", err)
		return 1
	}
	width, height, err := gridSize(cols, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bug-snake: %v\n", err)
		return 1
	}
	sym, err := render.ParseSymbols(cfg.Symbols, cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bug-snake: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bug-snake: create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "bug-snake: init screen: %v\n", err)
		return 1
	}
	core.SetTerminalReset(screen.Fini)
	screen.HideCursor()

	player, cleanup := setupAudio(cfg, screen)
	summary := play(cfg, screen, sym, player, width, height)
	cleanup()

	core.SetTerminalReset(nil)
	screen.Fini()

	fmt.Print(render.FormatSummary(summary))
	return 0
}

// play runs one game to completion and returns its statistics
func play(cfg config.Config, screen tcell.Screen, sym *render.SymbolSet, player engine.AudioPlayer, width, height int) engine.Summary {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[MAIN] grid %dx%d seed %d symbols %s", width, height, seed, sym.Name)

	clock := engine.NewPausableClock(nil)
	reg := status.NewRegistry()
	world := engine.NewWorld(width, height, vmath.NewFastRand(seed), clock, reg)
	world.Debug = cfg.Debug

	renderer := render.NewRenderer(screen, sym, render.NewPalette(cfg.Color))
	scheduler := engine.NewTickScheduler(world, clock, renderer)

	system.Populate(world)
	system.Register(world, scheduler, reg, player)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	commands := make(chan engine.Command, parameter.CommandBufferSize)
	var mute func() bool
	if player != nil {
		mute = player.ToggleMute
	}
	reader := input.NewReader(screen, nil, commands, mute)
	core.Go(func() { reader.Run(ctx) })

	if err := scheduler.Run(ctx, commands); err != nil {
		log.Printf("[MAIN] scheduler stopped: %v", err)
	}
	if world.Phase == engine.PhaseDead {
		log.Printf("[MAIN] died: %s at (%d,%d) tick %d", world.Death.Cause, world.Death.Pos.X, world.Death.Pos.Y, world.Tick)
	} else {
		log.Printf("[MAIN] run ended: phase=%s tick %d", world.Phase, world.Tick)
	}
	logTelemetry(reg)

	return world.Summary()
}

// setupAudio prefers the speaker and falls back to the terminal bell
// Audio failures are never fatal
func setupAudio(cfg config.Config, screen tcell.Screen) (engine.AudioPlayer, func()) {
	acfg := audio.DefaultAudioConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.Volume

	sm := audio.NewSoundManager(acfg)
	err := sm.Initialize()
	if err == nil {
		log.Printf("[AUDIO] speaker ready, muted=%v", sm.IsMuted())
		return sm, sm.Cleanup
	}
	log.Printf("[AUDIO] speaker unavailable: %v", err)

	if !cfg.Audio.Bell {
		return nil, func() {}
	}
	bell := audio.NewBellPlayer(func() { _ = screen.Beep() })
	if !cfg.Audio.Enabled {
		bell.ToggleMute()
	}
	return bell, func() {}
}

// applyFlags lets explicitly set flags override file values
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "symbols":
			cfg.Symbols = *symbolsFlag
		case "no-color":
			cfg.Color = !*noColorFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})
}
