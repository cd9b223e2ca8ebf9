// Package config loads the static startup configuration consumed once by world initialization
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/labyrinth/input"
	"github.com/lixenwraith/labyrinth/parameter"
)

// EnvPrefix scopes environment overrides, e.g. LABYRINTH_PLAYER_SPEED
const EnvPrefix = "LABYRINTH"

// Config is the complete startup configuration
type Config struct {
	Window WindowConfig `json:"window" mapstructure:"window"`
	Player PlayerConfig `json:"player" mapstructure:"player"`
	Camera CameraConfig `json:"camera" mapstructure:"camera"`
	Maze   MazeConfig   `json:"maze" mapstructure:"maze"`
	Input  InputConfig  `json:"input" mapstructure:"input"`
	Sim    SimConfig    `json:"sim" mapstructure:"sim"`
	Log    LogConfig    `json:"log" mapstructure:"log"`
	Audio  AudioConfig  `json:"audio" mapstructure:"audio"`
}

// WindowConfig holds display presentation settings
type WindowConfig struct {
	Title      string `json:"title" mapstructure:"title"`
	ClearColor string `json:"clearColor" mapstructure:"clearColor"` // #rrggbb
}

// PlayerConfig holds the controllable body settings
type PlayerConfig struct {
	Speed      float32  `json:"speed" mapstructure:"speed"`
	Radius     float32  `json:"radius" mapstructure:"radius"`
	LockedAxes []string `json:"lockedAxes" mapstructure:"lockedAxes"` // e.g. "translate-y", "rx"
}

// CameraConfig holds the follow camera rig settings
type CameraConfig struct {
	Offset      []float32 `json:"offset" mapstructure:"offset"`
	Distance    float32   `json:"distance" mapstructure:"distance"` // 0 uses the offset length
	ZoomMin     float32   `json:"zoomMin" mapstructure:"zoomMin"`
	ZoomMax     float32   `json:"zoomMax" mapstructure:"zoomMax"`
	Orbit       bool      `json:"orbit" mapstructure:"orbit"`
	Sensitivity float32   `json:"sensitivity" mapstructure:"sensitivity"`
	ZoomStep    float32   `json:"zoomStep" mapstructure:"zoomStep"`
}

// MazeConfig holds procedural maze settings
type MazeConfig struct {
	Enabled    bool    `json:"enabled" mapstructure:"enabled"`
	Width      int     `json:"width" mapstructure:"width"`
	Height     int     `json:"height" mapstructure:"height"`
	CellSize   float32 `json:"cellSize" mapstructure:"cellSize"`
	WallHeight float32 `json:"wallHeight" mapstructure:"wallHeight"`
	Braiding   float64 `json:"braiding" mapstructure:"braiding"`
	Seed       int64   `json:"seed" mapstructure:"seed"`
}

// InputConfig maps logical actions to physical key names
type InputConfig struct {
	Bindings map[string][]string `json:"bindings" mapstructure:"bindings"`
}

// SimConfig holds frame loop settings
type SimConfig struct {
	FrameRate int `json:"frameRate" mapstructure:"frameRate"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"` // Empty logs to stderr
}

// AudioConfig toggles the sound cues
type AudioConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// setDefaults registers every default with viper
func setDefaults() {
	viper.SetDefault("window.title", "Biggest Little Hackathon 2024")
	viper.SetDefault("window.clearColor", "#9bcae0")

	viper.SetDefault("player.speed", parameter.PlayerSpeed)
	viper.SetDefault("player.radius", parameter.PlayerRadius)
	viper.SetDefault("player.lockedAxes", []string{"translate-y", "rotate-x", "rotate-y", "rotate-z"})

	viper.SetDefault("camera.offset", []float32{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ})
	viper.SetDefault("camera.distance", 0)
	viper.SetDefault("camera.zoomMin", parameter.CameraZoomMin)
	viper.SetDefault("camera.zoomMax", parameter.CameraZoomMax)
	viper.SetDefault("camera.orbit", true)
	viper.SetDefault("camera.sensitivity", parameter.CameraSensitivity)
	viper.SetDefault("camera.zoomStep", parameter.CameraZoomStep)

	viper.SetDefault("maze.enabled", true)
	viper.SetDefault("maze.width", 21)
	viper.SetDefault("maze.height", 21)
	viper.SetDefault("maze.cellSize", 2.0)
	viper.SetDefault("maze.wallHeight", 2.0)
	viper.SetDefault("maze.braiding", 0.2)
	viper.SetDefault("maze.seed", 2024)

	// Per action, so a file overriding one action keeps the others
	for action, keys := range input.DefaultBindings {
		viper.SetDefault("input.bindings."+action, keys)
	}

	viper.SetDefault("sim.frameRate", parameter.DefaultFrameRate)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "labyrinth.log")

	viper.SetDefault("audio.enabled", true)
}

// Load builds the configuration from defaults, the optional file at path
// (format by extension: toml, json, yaml) and LABYRINTH_* environment variables,
// then validates it. Any error is fatal for startup
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading files or environment
func Default() *Config {
	bindings := make(map[string][]string, len(input.DefaultBindings))
	for action, keys := range input.DefaultBindings {
		bindings[action] = append([]string(nil), keys...)
	}

	return &Config{
		Window: WindowConfig{Title: "Biggest Little Hackathon 2024", ClearColor: "#9bcae0"},
		Player: PlayerConfig{
			Speed:      parameter.PlayerSpeed,
			Radius:     parameter.PlayerRadius,
			LockedAxes: []string{"translate-y", "rotate-x", "rotate-y", "rotate-z"},
		},
		Camera: CameraConfig{
			Offset:      []float32{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ},
			ZoomMin:     parameter.CameraZoomMin,
			ZoomMax:     parameter.CameraZoomMax,
			Orbit:       true,
			Sensitivity: parameter.CameraSensitivity,
			ZoomStep:    parameter.CameraZoomStep,
		},
		Maze: MazeConfig{
			Enabled:    true,
			Width:      21,
			Height:     21,
			CellSize:   2,
			WallHeight: 2,
			Braiding:   0.2,
			Seed:       2024,
		},
		Input: InputConfig{Bindings: bindings},
		Sim:   SimConfig{FrameRate: parameter.DefaultFrameRate},
		Log:   LogConfig{Level: "info", File: "labyrinth.log"},
		Audio: AudioConfig{Enabled: true},
	}
}
