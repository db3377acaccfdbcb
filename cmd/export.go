package main

import (
	"io"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/autosar-cli/internal/config"
	"github.com/sells-group/autosar-cli/internal/export"
	"github.com/sells-group/autosar-cli/internal/marker"
	"github.com/sells-group/autosar-cli/internal/profile"
)

// newSink picks the export destination for a format. Tests replace it.
var newSink = func(format, dir string, stdout io.Writer) (export.Sink, error) {
	switch format {
	case config.FormatGeoJSON:
		return export.NewFileSink(dir), nil
	case config.FormatShapefile:
		return export.NewShapefileSink(dir), nil
	case config.FormatStdout:
		return &export.WriterSink{W: stdout}, nil
	default:
		return nil, eris.Errorf("export: unknown format %q", format)
	}
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the IPP marker and range rings",
	Long: `Export the IPP marker and the profile's range rings as a GeoJSON
FeatureCollection (CalTopo-compatible properties), or as a pair of shapefiles.

Examples:
  autosar export --subject "Outdoor Activity" --activity Hiker \
    --terrain Mountainous --area Wilderness --lng -98.0 --lat 39.5 --name incident-42

  # Pipe the document elsewhere
  autosar export --radii 300,1000,2400,12800 --lng -98.0 --lat 39.5 --format stdout`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initPlanner()
		if err != nil {
			return err
		}

		ipp, err := pointFromFlags(cmd)
		if err != nil {
			return err
		}
		markers := marker.NewStore()
		if ipp != nil {
			markers.SetSingleMarker(*ipp)
		}

		p, err := env.profileFromFlags(cmd)
		if err != nil {
			return err
		}
		radii, err := radiiFromFlags(cmd, env)
		if err != nil {
			return err
		}

		description := ""
		if p != (profile.Profile{}) {
			description = p.Description()
		}

		f := cmd.Flags()
		name, _ := f.GetString("name")
		format, _ := f.GetString("format")
		if format == "" {
			format = cfg.Export.Format
		}
		dir, _ := f.GetString("dir")
		if dir == "" {
			dir = cfg.Export.Dir
		}

		points := markers.Markers()
		exporter := export.NewExporter(cfg.Rings.ExportSteps, env.Labels)
		doc, err := exporter.Export(points, radii, centerOf(points), description, name)
		if err != nil {
			return eris.Wrap(err, "export: build document")
		}
		if doc.Features() == 0 {
			zap.L().Warn("export has no markers or rings", zap.String("file", doc.FileName))
		}

		sink, err := newSink(format, dir, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		handle, err := sink.Write(ctx, doc, doc.FileName)
		if err != nil {
			zap.L().Error("export write failed", zap.String("format", format), zap.Error(err))
			return err
		}

		zap.L().Info("export complete",
			zap.String("id", handle.ID),
			zap.String("location", handle.Location),
			zap.Strings("files", handle.Files),
			zap.Int("features", doc.Features()),
			zap.Int("bytes", handle.Bytes),
		)
		return nil
	},
}

func init() {
	addProfileFlags(exportCmd)
	addPointFlags(exportCmd)
	f := exportCmd.Flags()
	f.Float64Slice("radii", nil, "explicit ring radii in meters (overrides the profile lookup)")
	f.String("name", export.DefaultFileName, "export file name")
	f.String("format", "", "output format: geojson, shapefile or stdout (default: export.format)")
	f.String("dir", "", "output directory (default: export.dir)")
	rootCmd.AddCommand(exportCmd)
}
