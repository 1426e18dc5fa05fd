package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Height: 6,
			Width:  7,
		},
		Player1: PlayerConfig{
			Name:  "Player 1",
			Glyph: "●",
			Color: "bright_red",
		},
		Player2: PlayerConfig{
			Name:  "Player 2",
			Glyph: "●",
			Color: "bright_yellow",
		},
		LogLevel: "info",
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
