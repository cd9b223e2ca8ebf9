package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/labyrinth/config"
	"github.com/lixenwraith/labyrinth/engine"
	"github.com/lixenwraith/labyrinth/input"
)

type headless struct {
	frames int
	locks  []bool
}

func (h *headless) Present(engine.Frame)        { h.frames++ }
func (h *headless) SetCursorLocked(locked bool) { h.locks = append(h.locks, locked) }

type silent struct{ bumps int }

func (s *silent) PlayBump() { s.bumps++ }

func TestAssembleRunsHeadless(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.Width, cfg.Maze.Height = 9, 9

	display := &headless{}
	sim, err := assemble(cfg, display, &silent{}, zerolog.Nop())
	require.NoError(t, err)
	require.Empty(t, sim.report.Warnings)

	names := make([]string, 0, len(sim.world.Systems()))
	for _, s := range sim.world.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"input", "motion", "collision", "goal", "camera", "guard", "audio", "present"}, names)

	loop := engine.NewLoop(sim.world, engine.LoopOptions{
		Clock:    &engine.ManualClock{Deltas: []float32{1.0 / 60}},
		Device:   input.StaticDevice{Keys: input.Keys(input.KeyForward)},
		Observer: sim.metrics,
		Logger:   zerolog.Nop(),
	})
	for i := 0; i < 120; i++ {
		require.False(t, loop.RunFrame(context.Background()))
	}

	assert.Equal(t, 120, display.frames)
	assert.Equal(t, int64(120), sim.metrics.Totals().Frames)
	assert.Empty(t, display.locks, "cursor lock only changes while orbiting")
}

func TestAssembleWithoutDisplay(t *testing.T) {
	sim, err := assemble(config.Default(), nil, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.NotPanics(t, func() { sim.world.Step(input.Snapshot{}, 1.0/60) })
}

func TestAssembleRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.ZoomMin, cfg.Camera.ZoomMax = 10, 5

	_, err := assemble(cfg, nil, nil, zerolog.Nop())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "labyrinth.log")
	logger, closer, err := setupLogging(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug().Msg("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))
}

func TestSetupLoggingStderr(t *testing.T) {
	_, closer, err := setupLogging(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
