package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mud-r1/audio"
	"github.com/lixenwraith/mud-r1/config"
	"github.com/lixenwraith/mud-r1/core"
	"github.com/lixenwraith/mud-r1/game"
	"github.com/lixenwraith/mud-r1/logging"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Log at debug level")
	soundFlag  = flag.Bool("sound", true, "Play audio cues (overrides [audio] enabled)")
)

func main() {
	// Panic Recovery: restore the terminal and print the stack even if the game crashes
	defer core.Recover()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mud-r1: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			if *debugFlag {
				cfg.Log.Level = "debug"
			}
		case "sound":
			cfg.Audio.Enabled = *soundFlag
		}
	})

	logger, err := logging.New(cfg.LogOptions())
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logger.Close()
	core.SetCrashLogger(logger)

	audioCfg, err := cfg.AudioSettings()
	if err != nil {
		return err
	}
	player, err := audio.NewPlayer(audioCfg)
	if err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	// Button events only: a held left button must not repeat the confirm
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	g, err := game.New(game.Options{
		Screen: screen,
		Config: cfg,
		Player: player,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return g.Run(ctx)
}
