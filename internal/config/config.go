// Package config provides YAML-based configuration loading for the
// Connect Four board, players and SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/connect4/internal/core"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 4
	MaxBoardSize = 16
)

// Config is the full application configuration.
type Config struct {
	Board    BoardConfig  `yaml:"board"`
	Player1  PlayerConfig `yaml:"player1" env-prefix:"CONNECT4_PLAYER1_"`
	Player2  PlayerConfig `yaml:"player2" env-prefix:"CONNECT4_PLAYER2_"`
	LogLevel string       `yaml:"log_level" env:"CONNECT4_LOG_LEVEL"`
	SSH      SSHConfig    `yaml:"ssh"`
}

// BoardConfig fixes the board dimensions for every game started by the process.
type BoardConfig struct {
	Height int `yaml:"height" env:"CONNECT4_BOARD_HEIGHT"`
	Width  int `yaml:"width" env:"CONNECT4_BOARD_WIDTH"`
}

// PlayerConfig defines how a player is labelled and drawn.
type PlayerConfig struct {
	Name  string `yaml:"name" env:"NAME"`
	Glyph string `yaml:"glyph" env:"GLYPH"`
	Color string `yaml:"color" env:"COLOR"`
}

// SSHConfig holds settings for `connect4 serve`.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"CONNECT4_SSH_ADDRESS"`
	HostKey     string        `yaml:"host_key" env:"CONNECT4_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"CONNECT4_SSH_IDLE_TIMEOUT"`
}

// GlyphRune returns the first rune of the glyph.
func (p PlayerConfig) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Glyph)
	return r
}

// ColorValue returns the parsed color, falling back to the default color.
func (p PlayerConfig) ColorValue() core.Color {
	c, _ := core.ParseColor(p.Color)
	return c
}

// Validate checks the configuration for values the game cannot use.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.height %d out of range [%d, %d]", c.Board.Height, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.width %d out of range [%d, %d]", c.Board.Width, MinBoardSize, MaxBoardSize))
	}

	for i, p := range []PlayerConfig{c.Player1, c.Player2} {
		if utf8.RuneCountInString(p.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("player%d.glyph must be a single character, got %q", i+1, p.Glyph))
		}
		if _, ok := core.ParseColor(p.Color); !ok {
			errs = append(errs, fmt.Errorf("player%d.color: unknown color %q", i+1, p.Color))
		}
	}
	if c.Player1.Glyph == c.Player2.Glyph && c.Player1.Color == c.Player2.Color {
		errs = append(errs, errors.New("players must differ in glyph or color"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
