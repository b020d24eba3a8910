package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/frontend/console"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
)

func newPlayCmd(rt *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rt.logger
			session := console.NewSession(
				console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				dice.NewLoggedRoller(dice.NewCryptoSource(), logger),
				location.NewLoader(rt.cfg.Content.LocationsDir),
				rt.cfg,
				logger,
			)
			logger.Info("session started", zap.String("start_location", rt.cfg.Content.StartLocation))
			err := session.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				logger.Info("session interrupted")
				return nil
			}
			if err != nil {
				logger.Error("session failed", zap.Error(err))
				return err
			}
			logger.Info("session ended")
			return nil
		},
	}
}
