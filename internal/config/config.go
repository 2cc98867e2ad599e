// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/setsubun/internal/core"
)

// SetsubunConfig contains all configuration for the game.
type SetsubunConfig struct {
	Arena      ArenaConfig  `yaml:"arena"`
	Background string       `yaml:"background"`
	Countdown  int          `yaml:"countdown"`
	Demons     DemonConfig  `yaml:"demons"`
	Bean       BeanConfig   `yaml:"bean"`
	Circle     CircleConfig `yaml:"circle"`
	HUD        HUDConfig    `yaml:"hud"`
	Assets     AssetsConfig `yaml:"assets"`
}

// ArenaConfig is the render surface size in pixels.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DemonConfig defines the demon swarm.
type DemonConfig struct {
	Count  int     `yaml:"count"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Length passed to the RNG for velocity components
	Glyph  string  `yaml:"glyph"`
	Font   string  `yaml:"font"`
	Color  string  `yaml:"color"`
}

// BeanConfig defines the pointer-steered bean.
type BeanConfig struct {
	Radius int    `yaml:"radius"`
	Color  string `yaml:"color"`
}

// CircleConfig defines the safe zone. Its radius is arena width / divisor.
type CircleConfig struct {
	RadiusDivisor int    `yaml:"radius_divisor"`
	Color         string `yaml:"color"`
}

// HUDConfig defines the score and counter text.
type HUDConfig struct {
	Font  string `yaml:"font"`
	Color string `yaml:"color"`
}

// AssetsConfig names the sprite sources. An empty root means the embedded set.
type AssetsConfig struct {
	Root  string `yaml:"root"`
	Demon string `yaml:"demon"`
	Bean  string `yaml:"bean"`
}

// Palette holds the parsed colours of a config.
type Palette struct {
	Background core.Color
	Demon      core.Color
	Bean       core.Color
	Circle     core.Color
	HUD        core.Color
}

// Palette parses every colour in the config.
func (c SetsubunConfig) Palette() (Palette, error) {
	var (
		p    Palette
		errs []error
	)
	parse := func(field, s string, dst *core.Color) {
		col, err := core.ParseColor(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
			return
		}
		*dst = col
	}
	parse("background", c.Background, &p.Background)
	parse("demons.color", c.Demons.Color, &p.Demon)
	parse("bean.color", c.Bean.Color, &p.Bean)
	parse("circle.color", c.Circle.Color, &p.Circle)
	parse("hud.color", c.HUD.Color, &p.HUD)
	return p, errors.Join(errs...)
}

// Validate reports every invalid field at once.
func (c SetsubunConfig) Validate() error {
	var errs []error
	positive := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", field, v))
		}
	}
	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("countdown", c.Countdown)
	positive("demons.count", c.Demons.Count)
	positive("demons.width", c.Demons.Width)
	positive("demons.height", c.Demons.Height)
	positive("bean.radius", c.Bean.Radius)
	positive("circle.radius_divisor", c.Circle.RadiusDivisor)
	if c.Demons.Speed <= 0 {
		errs = append(errs, fmt.Errorf("demons.speed must be positive, got %v", c.Demons.Speed))
	}
	if c.Demons.Glyph == "" {
		errs = append(errs, errors.New("demons.glyph must not be empty"))
	}
	if c.Assets.Demon == "" || c.Assets.Bean == "" {
		errs = append(errs, errors.New("assets.demon and assets.bean must be set"))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
