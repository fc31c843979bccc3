package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LayoutFile    string  `envconfig:"LAYOUT_FILE" default:"hud"`
	WatchDir      string  `envconfig:"LAYOUT_WATCH_DIR"`
	Width         float64 `envconfig:"LAYOUT_WIDTH" default:"1280"`
	Height        float64 `envconfig:"LAYOUT_HEIGHT" default:"720"`
	TicksPerFrame int     `envconfig:"LAYOUT_TICKS_PER_FRAME" default:"1"`
	Debug         bool    `envconfig:"LAYOUT_DEBUG" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the host cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.TicksPerFrame < 1 {
		return fmt.Errorf("config: ticks per frame must be at least 1, got %d", c.TicksPerFrame)
	}
	return nil
}
