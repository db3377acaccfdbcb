package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the next choices for a partial profile",
	Long: `List the choices for the next unset profile level.

Examples:
  # Activities for a category
  autosar options --subject "Outdoor Activity"

  # Terrains for an activity
  autosar options --subject "Outdoor Activity" --activity Hiker

  # Area types for a terrain
  autosar options --subject "Outdoor Activity" --activity Hiker --terrain Mountainous`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initPlanner()
		if err != nil {
			return err
		}

		p, err := env.profileFromFlags(cmd)
		if err != nil {
			return err
		}

		var level string
		var choices []string
		switch {
		case p.Subject == "":
			level = "categories"
			for _, cat := range env.Catalog.ForTable(env.Table) {
				choices = append(choices, cat.Label)
			}
		case p.Activity == "":
			level = "activities"
			choices = env.Catalog.ActivitiesFor(env.Table, p.Subject)
		case p.Terrain == "":
			level = "terrains"
			choices = env.Table.TerrainsFor(p.Subject, p.Activity)
		default:
			level = "areas"
			choices = env.Table.AreasFor(p.Subject, p.Activity, p.Terrain)
		}

		if len(choices) == 0 {
			zap.L().Warn("no options for profile", zap.String("level", level), zap.Stringer("profile", p))
		}
		for _, c := range choices {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	addProfileFlags(optionsCmd)
	rootCmd.AddCommand(optionsCmd)
}
