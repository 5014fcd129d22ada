// Package config loads game configuration from YAML, following the search
// order customPath -> ~/.torsnake/config.yaml -> ./config.yaml -> embedded
// default.
package config

import (
	"time"

	"github.com/mkamenev/torsnake/internal/game"
)

// Config is the full application configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Speed  SpeedConfig  `yaml:"speed"`
	Level  LevelConfig  `yaml:"level"`
	Scores ScoresConfig `yaml:"scores"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig describes the board.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpeedConfig describes the tick cadence bounds in milliseconds.
type SpeedConfig struct {
	InitialMs int `yaml:"initial_ms"`
	MinMs     int `yaml:"min_ms"`
}

// LevelConfig describes score-driven level progression.
type LevelConfig struct {
	Max            int `yaml:"max"`
	PointsPerLevel int `yaml:"points_per_level"`
}

// ScoresConfig selects and locates the leaderboard backend.
type ScoresConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
	Limit   int    `yaml:"limit"` // Leaderboard length cap
}

// AudioConfig holds the global sound flag.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:  GridConfig{Size: 20},
		Speed: SpeedConfig{InitialMs: 165, MinMs: 70},
		Level: LevelConfig{Max: 10, PointsPerLevel: 10},
		Scores: ScoresConfig{
			Backend: "file",
			Path:    "~/.torsnake",
			Limit:   5,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Validate clamps nonsense values back to defaults so a hand-edited config
// cannot produce an unplayable game.
func (c *Config) Validate() {
	def := Default()

	if c.Grid.Size < 4 || c.Grid.Size > 64 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Speed.InitialMs <= 0 {
		c.Speed.InitialMs = def.Speed.InitialMs
	}
	if c.Speed.MinMs <= 0 || c.Speed.MinMs > c.Speed.InitialMs {
		c.Speed.MinMs = def.Speed.MinMs
		if c.Speed.MinMs > c.Speed.InitialMs {
			c.Speed.MinMs = c.Speed.InitialMs
		}
	}
	if c.Level.Max < 1 {
		c.Level.Max = def.Level.Max
	}
	if c.Level.PointsPerLevel < 1 {
		c.Level.PointsPerLevel = def.Level.PointsPerLevel
	}
	if c.Scores.Backend != "file" && c.Scores.Backend != "sqlite" {
		c.Scores.Backend = def.Scores.Backend
	}
	if c.Scores.Path == "" {
		c.Scores.Path = def.Scores.Path
	}
	if c.Scores.Limit < 1 || c.Scores.Limit > 100 {
		c.Scores.Limit = def.Scores.Limit
	}
}

// GameOptions translates the config into game parameters.
func (c Config) GameOptions(seed int64) game.Options {
	return game.Options{
		GridSize:       c.Grid.Size,
		InitialSpeed:   time.Duration(c.Speed.InitialMs) * time.Millisecond,
		MinSpeed:       time.Duration(c.Speed.MinMs) * time.Millisecond,
		MaxLevel:       c.Level.Max,
		PointsPerLevel: c.Level.PointsPerLevel,
		Seed:           seed,
	}
}
