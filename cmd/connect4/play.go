package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/platform/tui"
)

var flagDebugLog string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game",
	Long: `Start a two-player game in this terminal. Players take turns at the
same keyboard.

Controls:
  ←/→, h/l     - Move the column cursor
  Space/Enter  - Drop a piece
  1-9          - Drop a piece straight into a column
  R            - Start a new game
  Ctrl+S       - Save a screenshot to ~/.connect4/screenshots
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  connect4 play
  connect4 play --debug ./connect4.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDebugLog, "debug", "", "Write a debug log of every move to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := connect4.NewGame(connect4.OptionsFromConfig(appConfig))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height}

	// The alternate screen owns stdout/stderr, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if flagDebugLog != "" {
		f, err := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open debug log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "connect4")
	if flagDebugLog != "" {
		logger.SetLevel(log.DebugLevel)
	}

	opts := []tui.Option{tui.WithLogger(logger)}
	if dir, err := config.DataDir(); err == nil {
		opts = append(opts, tui.WithScreenshotDir(filepath.Join(dir, "screenshots")))
	}

	if err := tui.Run(game, cfg, opts...); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
