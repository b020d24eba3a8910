package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/frontend/console"
	"github.com/cory-johannsen/swampqueen/internal/game/character"
)

func newCreateCmd(rt *deps) *cobra.Command {
	var (
		name      string
		className string
		raceName  string
		bonuses   []string
	)
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a character without prompts and print its sheet",
		Example: "  swampqueen create --name 'Mr. Test' --class bastion --race insectoid_fae --bonus slipperiness --bonus bulk",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(bonuses) != 2 {
				return fmt.Errorf("exactly two --bonus stats are required, got %d", len(bonuses))
			}
			class, err := character.ParseClass(className)
			if err != nil {
				return err
			}
			race, err := character.ParseRace(raceName)
			if err != nil {
				return err
			}
			var stats [2]character.Stat
			for i, b := range bonuses {
				if stats[i], err = character.ParseStat(b); err != nil {
					return err
				}
			}

			c, err := character.Build(name, class, race, stats[0], stats[1])
			if err != nil {
				return err
			}
			rt.logger.Info("character created",
				zap.String("name", c.Name),
				zap.String("class", c.Class.Label()),
				zap.String("race", c.Race.Label()),
			)
			fmt.Fprint(cmd.OutOrStdout(), console.FormatCharacterSheet(c))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "character name")
	cmd.Flags().StringVar(&className, "class", "", "class label, e.g. soothsayer")
	cmd.Flags().StringVar(&raceName, "race", "", "race label, e.g. alligator_folk")
	cmd.Flags().StringArrayVar(&bonuses, "bonus", nil, "bonus stat label; give twice, e.g. --bonus bulk --bonus the_sight")
	return cmd
}
