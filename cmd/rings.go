package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/autosar-cli/internal/geo"
	"github.com/sells-group/autosar-cli/internal/rings"
)

var ringsCmd = &cobra.Command{
	Use:   "rings",
	Short: "Compute range rings around an IPP",
	Long: `Compute the probability-of-area range rings for a subject profile around an
Initial Planning Point, at on-screen fidelity.

Examples:
  autosar rings --subject "Outdoor Activity" --activity Hiker \
    --terrain Mountainous --area Wilderness --lng -98.0 --lat 39.5

  # Rings from explicit radii
  autosar rings --radii 300,1000,2400,12800 --lng -98.0 --lat 39.5`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := initPlanner()
		if err != nil {
			return err
		}

		center, err := pointFromFlags(cmd)
		if err != nil {
			return err
		}
		if center == nil {
			return eris.New("rings: --lng and --lat are required")
		}

		radii, err := radiiFromFlags(cmd, env)
		if err != nil {
			return err
		}

		steps, _ := cmd.Flags().GetInt("steps")
		if steps == 0 {
			steps = cfg.Rings.RenderSteps
		}

		annotations, err := rings.Annotate(cmd.Context(), *center, radii, rings.NewBuilder(steps), env.Labels)
		if err != nil {
			return eris.Wrap(err, "rings: annotate")
		}

		zap.L().Debug("rings computed",
			zap.Stringer("center", center),
			zap.Int("rings", len(annotations)),
			zap.Int("steps", steps),
		)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		ippAnchor := rings.MarkerLabelAnchor(*center)
		fmt.Fprintf(w, "IPP\t%s\tlabel at %s\n", center, ippAnchor)
		fmt.Fprintln(w, "INDEX\tLABEL\tRADIUS_M\tVERTICES\tLABEL_ANCHOR")
		for _, a := range annotations {
			fmt.Fprintf(w, "%d\t%s\t%.0f\t%d\t%s\n", a.Index, a.Label, a.RadiusMeters, len(a.Vertices()), a.Anchor)
		}
		return w.Flush()
	},
}

// radiiFromFlags returns --radii when given, else the profile's LPB radii.
func radiiFromFlags(cmd *cobra.Command, env *plannerEnv) ([]float64, error) {
	if cmd.Flags().Changed("radii") {
		return cmd.Flags().GetFloat64Slice("radii")
	}
	p, err := env.profileFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	radii := env.Resolver.Resolve(p)
	if len(radii) == 0 {
		zap.L().Warn("no LPB data for profile, no rings to draw", zap.Stringer("profile", p))
	}
	return radii, nil
}

// centerOf is the ring center for a marker list: the IPP when present.
func centerOf(markers []geo.Point) *geo.Point {
	if len(markers) == 0 {
		return nil
	}
	c := markers[0]
	return &c
}

func init() {
	addProfileFlags(ringsCmd)
	addPointFlags(ringsCmd)
	f := ringsCmd.Flags()
	f.Float64Slice("radii", nil, "explicit ring radii in meters (overrides the profile lookup)")
	f.Int("steps", 0, "bearings per ring (0=rings.render_steps)")
	rootCmd.AddCommand(ringsCmd)
}
