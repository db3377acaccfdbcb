// Package export builds the GeoJSON document for markers and range rings
// and hands it to a sink.
package export

import (
	"encoding/json"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/autosar-cli/internal/geo"
	"github.com/sells-group/autosar-cli/internal/rings"
)

// Fixed feature property values understood by CalTopo-style mapping tools.
const (
	creator      = "AutoSAR"
	markerColor  = "FF0000"
	markerSymbol = "point"
	ringStroke   = "#000000"
	classMarker  = "Marker"
	classShape   = "Shape"
	ippTitle     = "IPP"
)

// Document is one serialized export. It is built per export action and
// not retained after the sink write.
type Document struct {
	Collection *geojson.FeatureCollection
	Data       []byte
	FileName   string
}

// Features returns the number of features in the document.
func (d *Document) Features() int {
	if d == nil || d.Collection == nil {
		return 0
	}
	return len(d.Collection.Features)
}

// Exporter assembles markers and rings into a FeatureCollection.
type Exporter struct {
	builder rings.Builder
	labels  *rings.LabelFormatter
}

// NewExporter creates an Exporter building rings at steps bearings
// (rings.ExportSteps when 0). A nil formatter uses en-US labels.
func NewExporter(steps int, labels *rings.LabelFormatter) *Exporter {
	if steps == 0 {
		steps = rings.ExportSteps
	}
	return &Exporter{builder: rings.Builder{Steps: steps}, labels: labels}
}

// Export builds the document. Marker features come first, IPP at index 0,
// then one LineString per ring with radius > 0, both in input order. Rings
// are only emitted when center is set. An empty document is valid.
func (e *Exporter) Export(markers []geo.Point, radii []float64, center *geo.Point, description, fileNameHint string) (*Document, error) {
	features := make([]*geojson.Feature, 0, len(markers)+len(radii))

	for i, p := range markers {
		features = append(features, markerFeature(i, p, description))
	}

	if center != nil && len(radii) > 0 {
		for i, radius := range radii {
			if radius <= 0 {
				continue
			}
			ring, err := e.builder.BuildRing(*center, radius)
			if err != nil {
				return nil, eris.Wrapf(err, "export: ring %d", i)
			}
			features = append(features, &geojson.Feature{
				Geometry: rings.Outline(ring),
				Properties: map[string]interface{}{
					"title":          e.labels.Format(i, radius),
					"class":          classShape,
					"stroke":         ringStroke,
					"stroke-opacity": 1,
					"weight":         2,
					"creator":        creator,
				},
			})
		}
	}

	fc := &geojson.FeatureCollection{Features: features}
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, eris.Wrap(err, "export: encode feature collection")
	}

	return &Document{
		Collection: fc,
		Data:       data,
		FileName:   SanitizeFileName(fileNameHint),
	}, nil
}

func markerFeature(i int, p geo.Point, description string) *geojson.Feature {
	title := ippTitle
	if i > 0 {
		title = "Marker " + strconv.Itoa(i+1)
	}
	props := map[string]interface{}{
		"title":         title,
		"class":         classMarker,
		"marker-symbol": markerSymbol,
		"marker-color":  markerColor,
		"creator":       creator,
		"weight":        1,
	}
	if description != "" {
		props["description"] = description
	}
	return &geojson.Feature{
		Geometry:   p.Geom(),
		Properties: props,
	}
}
