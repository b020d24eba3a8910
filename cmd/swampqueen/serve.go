package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/frontend/handlers"
	"github.com/cory-johannsen/swampqueen/internal/frontend/telnet"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
)

func newServeCmd(rt *deps) *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve interactive sessions to Telnet clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rt.logger
			cfg := rt.cfg
			if cmd.Flags().Changed("host") {
				cfg.Telnet.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Telnet.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			loader := location.NewLoader(cfg.Content.LocationsDir)
			all, err := loader.LoadAll()
			if err != nil {
				return fmt.Errorf("validating locations: %w", err)
			}
			if _, ok := all[cfg.Content.StartLocation]; !ok {
				return fmt.Errorf("start location %q not found in %s", cfg.Content.StartLocation, loader.Dir())
			}
			logger.Info("locations loaded", zap.Int("count", len(all)))

			acc := telnet.NewAcceptor(cfg.Telnet, handlers.NewGameHandler(cfg, loader, nil, logger), logger)
			return acc.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "bind address (overrides telnet.host)")
	cmd.Flags().IntVar(&port, "port", 0, "TCP port (overrides telnet.port)")
	return cmd
}
