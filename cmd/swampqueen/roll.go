package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/swampqueen/internal/frontend/console"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
)

func newRollCmd(rt *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "roll NOTATION...",
		Short:   "Roll dice given in XdY notation, up to dice.max_count per notation",
		Example: "  swampqueen roll 3d6 1d20",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roller := dice.NewLoggedRoller(dice.NewCryptoSource(), rt.logger)
			for _, notation := range args {
				res, err := roller.RollNotationWithin(notation, rt.cfg.Dice.MaxCount)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), console.FormatRoll(notation, res))
			}
			return nil
		},
	}
}
