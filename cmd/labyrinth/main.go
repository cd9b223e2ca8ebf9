package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/labyrinth/audio"
	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/logging"
	"github.com/lixenwraith/labyrinth/physics"
	"github.com/lixenwraith/labyrinth/scene"
	"github.com/lixenwraith/labyrinth/system"
	"github.com/lixenwraith/labyrinth/telemetry"
	"github.com/lixenwraith/labyrinth/terminal"
)

var configFlag = flag.String("config", "", "Configuration file (toml, json or yaml)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "labyrinth: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "labyrinth: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.EnableFocus()
	defer screen.Fini()

	// Restore the terminal before any crash report
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("simulation crashed")
			core.HandleCrash(r)
		}
	}()

	rgb, err := cfg.ClearRGB()
	if err != nil {
		return err
	}
	display := terminal.NewScreen(screen, cfg.Window.Title, rgb)

	player := setupAudio(cfg.Audio, logger)
	defer player.Close()

	sim, err := assemble(cfg, display, player, logger)
	if err != nil {
		return err
	}
	if m, l, ok := sim.loader.Maze(); ok {
		display.SetMaze(m, l)
	}

	keymap, err := cfg.KeyMap()
	if err != nil {
		return err
	}
	keyboard := terminal.NewKeyboard(keymap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	core.Go(func() { keyboard.Run(ctx, screen) })

	loop := engine.NewLoop(sim.world, engine.LoopOptions{
		Clock:     engine.NewPausableClock(),
		Device:    keyboard,
		Observer:  sim.metrics,
		Logger:    logger,
		FrameRate: cfg.Sim.FrameRate,
	})
	err = loop.Run(ctx)

	totals := sim.metrics.Totals()
	logger.Info().
		Int64("frames", totals.Frames).
		Int64("wall_contacts", totals.WallContacts).
		Int64("transform_restores", totals.Restores).
		Msg("simulation stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// simulation is a populated world with its collaborators
type simulation struct {
	world     *engine.World
	collision *physics.CollisionWorld
	loader    *scene.ProceduralLoader
	report    *scene.Report
	metrics   *telemetry.FrameMetrics
}

// assemble builds the scene and registers every system in frame order
// display and sound may be nil
func assemble(cfg *config.Config, display interface {
	engine.Display
	engine.CursorLocker
}, sound engine.SoundPlayer, logger zerolog.Logger) (*simulation, error) {
	metrics, err := telemetry.NewFrameMetrics(telemetry.Meter())
	if err != nil {
		return nil, err
	}

	w := engine.NewWorld()
	cw := physics.NewCollisionWorld()
	loader := scene.NewProceduralLoader(cfg)
	report, err := scene.Build(cfg, loader, w, cw, logger)
	if err != nil {
		return nil, err
	}

	var (
		presenter engine.Display
		locker    engine.CursorLocker
	)
	if display != nil {
		presenter, locker = display, display
	}

	w.AddSystem(system.NewInputSystem(w))
	w.AddSystem(system.NewMotionSystem(w))
	w.AddSystem(system.NewCollisionSystem(w, cw))
	w.AddSystem(system.NewGoalSystem(w))
	w.AddSystem(system.NewCameraSystem(w, locker))
	w.AddSystem(system.NewGuardSystem(w, cw, logging.Sampled(logger)))
	w.AddSystem(system.NewAudioSystem(w, sound))
	w.AddSystem(system.NewPresentSystem(w, presenter))

	return &simulation{world: w, collision: cw, loader: loader, report: report, metrics: metrics}, nil
}

// setupLogging opens the log destination; the closer is always non-nil
func setupLogging(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return logging.New(os.Stderr, cfg.Level), io.NopCloser(nil), nil
	}
	f, err := logging.OpenFile(cfg.File)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return logging.New(f, cfg.Level), f, nil
}

// setupAudio opens the speaker; failure leaves a silent player
func setupAudio(cfg config.AudioConfig, logger zerolog.Logger) *audio.Player {
	player := audio.NewPlayer()
	if !cfg.Enabled {
		return player
	}
	if err := player.Open(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	return player
}
