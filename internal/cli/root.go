// Package cli wires configuration, logging and the UI into cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sectiongrid/internal/config"
	"sectiongrid/internal/logging"
	"sectiongrid/internal/monitor"
	"sectiongrid/internal/tui"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Root returns the command tree. Running it without a subcommand starts the
// full-screen grid.
func Root() *cobra.Command {
	var configFile string
	rootCmd := &cobra.Command{
		Use:           "sectiongrid",
		Short:         "Split the terminal into a grid of N cells",
		Long:          "Split the terminal into a grid of N roughly square cells. Type a number and press enter to change N.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (json, yaml or toml)")
	rootCmd.PersistentFlags().String("log.level", "info", "log level: none, trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log.file", "", "write logs to this file")

	rootCmd.Flags().String("tty", "", "TTY device to use for output (e.g., /dev/tty1)")
	rootCmd.Flags().Duration("frame_interval", 100*time.Millisecond, "time between frames")
	rootCmd.Flags().Duration("fade_delay", 300*time.Millisecond, "delay before a new count is applied")
	rootCmd.Flags().IntP("initial_count", "n", 1, "number of cells to start with")
	rootCmd.Flags().Bool("rgb", false, "start with random cell colours")
	rootCmd.Flags().Bool("rain", true, "show the falling glyph background behind small grids")
	rootCmd.Flags().Bool("monitor.enabled", true, "show host CPU and memory usage")
	rootCmd.Flags().String("snapshot.dir", ".", "directory ctrl+s snapshots are written to")

	rootCmd.AddCommand(Plan())
	rootCmd.AddCommand(Snapshot())
	rootCmd.AddCommand(Version())
	return rootCmd
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

func runUI(cmd *cobra.Command, configFile string) error {
	cfg, meta, err := config.Load(cmd, configFile)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Fullscreen: true})
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	if closeLog != nil {
		defer closeLog()
	}
	logging.WithSession(uuid.New().String())
	if meta.FileNotFound {
		log.Warn().Str("path", configFile).Msg("config file not found, continue using environment and flag options")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var mon *monitor.Monitor
	if cfg.Monitor.Enabled {
		mon = monitor.New(cfg.Monitor.Interval, nil)
		go mon.Run(ctx)
	}

	screen, err := tui.OpenScreen(cfg.TTY)
	if err != nil {
		return err
	}
	defer screen.Fini()

	log.Info().Int("initial_count", cfg.InitialCount).Bool("rgb", cfg.RGB).Msg("starting grid")
	err = tui.New(screen, cfg, mon).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("bye")
	return nil
}
