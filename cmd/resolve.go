package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/autosar-cli/internal/profile"
)

// resolvedRing is one row of resolve output.
type resolvedRing struct {
	Index        int     `json:"index"`
	RadiusMeters float64 `json:"radius_meters"`
	Label        string  `json:"label"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a subject profile to ring radii",
	Long:  "Look up the LPB ring radii for a subject profile. A profile with no data resolves to no rings.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initPlanner()
		if err != nil {
			return err
		}

		p, err := env.profileFromFlags(cmd)
		if err != nil {
			return err
		}

		radii := env.Resolver.Resolve(p)
		if len(radii) == 0 {
			zap.L().Warn("no LPB data for profile", zap.Stringer("profile", p))
		}

		rows := resolvedRings(env, radii)
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			out := struct {
				Profile profile.Profile `json:"profile"`
				Rings   []resolvedRing  `json:"rings"`
			}{Profile: p, Rings: rows}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return eris.Wrap(err, "encode resolve output")
			}
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tRADIUS_M\tLABEL")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%.0f\t%s\n", r.Index, r.RadiusMeters, r.Label)
		}
		return w.Flush()
	},
}

// resolvedRings labels every present ring, skipping radii <= 0.
func resolvedRings(env *plannerEnv, radii []float64) []resolvedRing {
	rows := make([]resolvedRing, 0, len(radii))
	for i, r := range radii {
		if r <= 0 {
			continue
		}
		rows = append(rows, resolvedRing{Index: i, RadiusMeters: r, Label: env.Labels.Format(i, r)})
	}
	return rows
}

func init() {
	addProfileFlags(resolveCmd)
	resolveCmd.Flags().Bool("json", false, "print JSON instead of a table")
	rootCmd.AddCommand(resolveCmd)
}
