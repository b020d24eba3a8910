// Package main is the Swampqueen command-line entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/config"
	"github.com/cory-johannsen/swampqueen/internal/observability"
)

// deps is the configuration and logger shared by every subcommand.
type deps struct {
	cfg    config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		envFile    string
		rt         deps
	)

	root := &cobra.Command{
		Use:           "swampqueen",
		Short:         "Swampqueen text role-playing prototype",
		Long:          `Swampqueen creates characters, rolls XdY dice, reads narrative locations, and serves sessions over Telnet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("loading env file %s: %w", envFile, err)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, err := observability.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			rt.cfg = cfg
			rt.logger = logger
			logger.Debug("configuration loaded",
				zap.String("config", configPath),
				zap.String("command", cmd.Name()),
				zap.String("locations_dir", cfg.Content.LocationsDir),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "configs/dev.yaml", "path to configuration file")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with SWAMPQUEEN_* overrides")

	root.AddCommand(
		newPlayCmd(&rt),
		newRollCmd(&rt),
		newCreateCmd(&rt),
		newLocationCmd(&rt),
		newServeCmd(&rt),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
