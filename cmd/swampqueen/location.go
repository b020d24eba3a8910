package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/frontend/console"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
)

func newLocationCmd(rt *deps) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "location [ID]",
		Short: "Print a location's passage (defaults to the start location)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := rt.cfg.Content.StartLocation
			if len(args) == 1 {
				id = args[0]
			}
			loc, err := location.NewLoader(rt.cfg.Content.LocationsDir).Load(id)
			if err != nil {
				return err
			}
			if _, ok := loc.Paragraph(key, 0); !ok {
				return fmt.Errorf("location %q has no %q passage", id, key)
			}
			rt.logger.Debug("location loaded", zap.String("id", loc.ID), zap.String("key", key))
			fmt.Fprint(cmd.OutOrStdout(), console.FormatLocation(loc, key))
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", console.IntroKey, "passage key to print")
	return cmd
}
