package config

import (
	_ "embed"
)

//go:embed defaults/setsubun.yaml
var defaultSetsubunYAML []byte

// DefaultCountdown is the number of ticks in one round.
const DefaultCountdown = 1000

// DefaultSetsubunConfig returns the default configuration.
func DefaultSetsubunConfig() SetsubunConfig {
	return SetsubunConfig{
		Arena: ArenaConfig{
			Width:  480,
			Height: 320,
		},
		Background: "#FFFFFF",
		Countdown:  DefaultCountdown,
		Demons: DemonConfig{
			Count:  5,
			Width:  10,
			Height: 10,
			Speed:  2.0,
			Glyph:  "@",
			Font:   "24px sans-serif",
			Color:  "#D24545",
		},
		Bean: BeanConfig{
			Radius: 10,
			Color:  "#E1D3A9",
		},
		Circle: CircleConfig{
			RadiusDivisor: 3,
			Color:         "#D1E6E8",
		},
		HUD: HUDConfig{
			Font:  "16px sans-serif",
			Color: "#000000",
		},
		Assets: AssetsConfig{
			Demon: "demon.png",
			Bean:  "bean.png",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSetsubunYAML
}
