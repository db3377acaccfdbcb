package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List subject categories",
	Long:  "List the subject categories available in the lookup table, with their selection priority.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initPlanner()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRIORITY\tCATEGORY\tACTIVITIES")
		for _, cat := range env.Catalog.ForTable(env.Table) {
			fmt.Fprintf(w, "%d\t%s\t%d\n", cat.Priority, cat.Label, len(env.Catalog.ActivitiesFor(env.Table, cat.Label)))
		}
		return w.Flush()
	},
}

func init() { rootCmd.AddCommand(categoriesCmd) }
