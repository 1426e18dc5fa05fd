// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 play      - Play a hot-seat game in this terminal
//	connect4 serve     - Start an SSH server; every session plays its own game
//	connect4 config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Path to a YAML config file
//	--env-file <path>  - Load CONNECT4_* variables from a .env file
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagEnvFile string

	// Loaded in PersistentPreRunE
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four for two players in your terminal",
	Long: `Connect Four: drop pieces into a column, first to line up four
horizontally, vertically or diagonally wins. A full board is a tie.

Available commands:
  play     - Hot-seat game in this terminal
  serve    - SSH server, one independent game per session
  config   - Print the effective configuration

Examples:
  connect4 play
  connect4 play --config ./my-board.yaml
  connect4 serve --ssh :2222
  CONNECT4_BOARD_WIDTH=9 connect4 play`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file with CONNECT4_* overrides")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the optional .env file and then the configuration.
func loadConfig(_ *cobra.Command, _ []string) error {
	if flagEnvFile != "" {
		if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot load %s: %w", flagEnvFile, err)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(appConfig.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", appConfig.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
