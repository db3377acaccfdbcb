package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/autosar-cli/internal/geo"
	"github.com/sells-group/autosar-cli/internal/lpb"
	"github.com/sells-group/autosar-cli/internal/profile"
	"github.com/sells-group/autosar-cli/internal/rings"
)

// plannerEnv holds the lookup table, catalog and formatters shared by the
// planning commands.
type plannerEnv struct {
	Table    *lpb.Table
	Catalog  *profile.Catalog
	Resolver *profile.Resolver
	Labels   *rings.LabelFormatter
}

// initPlanner loads the lookup table and catalog named by the config,
// falling back to the bundled resources.
func initPlanner() (*plannerEnv, error) {
	var (
		table *lpb.Table
		err   error
	)
	if cfg.Lookup.Path != "" {
		table, err = lpb.LoadFile(cfg.Lookup.Path)
	} else {
		table, err = lpb.Load()
	}
	if err != nil {
		return nil, eris.Wrap(err, "load lookup table")
	}

	var catalog *profile.Catalog
	if cfg.Catalog.Path != "" {
		catalog, err = profile.LoadCatalog(cfg.Catalog.Path)
	} else {
		catalog, err = profile.DefaultCatalog()
	}
	if err != nil {
		return nil, eris.Wrap(err, "load category catalog")
	}

	labels, err := rings.ParseLocale(cfg.Label.Locale)
	if err != nil {
		return nil, eris.Wrapf(err, "parse label locale %q", cfg.Label.Locale)
	}

	return &plannerEnv{
		Table:    table,
		Catalog:  catalog,
		Resolver: profile.NewResolver(table),
		Labels:   labels,
	}, nil
}

// addProfileFlags registers the subject profile flags on cmd.
func addProfileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("subject", nil, "subject category; repeat or comma-separate to let the highest-priority category win")
	f.String("activity", "", "subject activity (e.g. Hiker)")
	f.String("terrain", "", "terrain (e.g. Mountainous)")
	f.String("area", "", "area type (e.g. Wilderness)")
}

// profileFromFlags builds a profile from the flags added by addProfileFlags.
func (pe *plannerEnv) profileFromFlags(cmd *cobra.Command) (profile.Profile, error) {
	subjects, err := cmd.Flags().GetStringSlice("subject")
	if err != nil {
		return profile.Profile{}, err
	}
	activity, _ := cmd.Flags().GetString("activity")
	terrain, _ := cmd.Flags().GetString("terrain")
	area, _ := cmd.Flags().GetString("area")

	return profile.New(pe.pickSubject(subjects), activity, terrain, area), nil
}

// pickSubject resolves a multi-category selection to one subject.
func (pe *plannerEnv) pickSubject(subjects []string) string {
	var cleaned []string
	for _, s := range subjects {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	if cat, ok := pe.Catalog.Pick(cleaned...); ok {
		if len(cleaned) > 1 {
			zap.L().Debug("picked highest-priority subject",
				zap.Strings("selected", cleaned),
				zap.String("subject", cat.Label),
				zap.Int("priority", cat.Priority),
			)
		}
		return cat.Label
	}
	return cleaned[0]
}

// addPointFlags registers --lng and --lat on cmd.
func addPointFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("lng", 0, "IPP longitude in decimal degrees")
	f.Float64("lat", 0, "IPP latitude in decimal degrees")
}

// pointFromFlags returns the IPP from --lng/--lat, or nil when neither is set.
func pointFromFlags(cmd *cobra.Command) (*geo.Point, error) {
	if !cmd.Flags().Changed("lng") && !cmd.Flags().Changed("lat") {
		return nil, nil
	}
	lng, _ := cmd.Flags().GetFloat64("lng")
	lat, _ := cmd.Flags().GetFloat64("lat")
	p, err := geo.NewPoint(lng, lat)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
