// Package rings turns LPB ring radii into range-ring geometry and labels.
package rings

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/autosar-cli/internal/geo"
)

// Default ring fidelity per call site.
const (
	RenderSteps = 360
	ExportSteps = 64
)

// minSteps is the fewest bearings that still form a polygon.
const minSteps = 3

// markerLabelOffsetMeters lifts the IPP label clear of the marker icon.
const markerLabelOffsetMeters = 5.0

// ErrInvalidRadius is returned when a ring is requested for a radius <= 0.
// Callers filter absent rings before building geometry.
var ErrInvalidRadius = eris.New("rings: radius must be positive")

// Builder builds rings at a fixed number of bearing steps.
type Builder struct {
	Steps int
}

// NewBuilder returns a Builder, falling back to RenderSteps when steps is 0.
func NewBuilder(steps int) Builder {
	if steps == 0 {
		steps = RenderSteps
	}
	return Builder{Steps: steps}
}

// BuildRing builds a ring around center at the builder's fidelity.
func (b Builder) BuildRing(center geo.Point, radiusMeters float64) (*geom.Polygon, error) {
	return BuildRing(center, radiusMeters, b.Steps)
}

// BuildRing approximates a circle of radiusMeters around center. It samples
// steps bearings clockwise from north, projects each along a great circle and
// repeats the first vertex last, so the single linear ring has steps+1
// coordinates.
func BuildRing(center geo.Point, radiusMeters float64, steps int) (*geom.Polygon, error) {
	if !(radiusMeters > 0) {
		return nil, eris.Wrapf(ErrInvalidRadius, "rings: build ring with radius %v", radiusMeters)
	}
	if steps < minSteps {
		return nil, eris.Errorf("rings: need at least %d steps, got %d", minSteps, steps)
	}

	flat := make([]float64, 0, (steps+1)*2)
	for i := 0; i < steps; i++ {
		bearing := float64(i) * 360 / float64(steps)
		p := geo.Destination(center, radiusMeters, bearing)
		flat = append(flat, p.Lng, p.Lat)
	}
	flat = append(flat, flat[0], flat[1])

	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}), nil
}

// Outline returns the ring's boundary as an open line whose last vertex
// repeats the first.
func Outline(ring *geom.Polygon) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, ring.LinearRing(0).FlatCoords())
}

// LabelAnchor returns the point at the top of the ring, radiusMeters due
// north of center, where the ring's label is drawn.
func LabelAnchor(center geo.Point, radiusMeters float64) geo.Point {
	return geo.Destination(center, radiusMeters, 0)
}

// MarkerLabelAnchor returns the IPP label position, a fixed offset north of
// the marker regardless of ring size.
func MarkerLabelAnchor(center geo.Point) geo.Point {
	return geo.Destination(center, markerLabelOffsetMeters, 0)
}
