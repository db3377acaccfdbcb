package rings

import (
	"context"

	"github.com/twpayne/go-geom"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/autosar-cli/internal/geo"
)

// Annotation is one drawable range ring.
type Annotation struct {
	Index        int           `json:"index"`
	RadiusMeters float64       `json:"radius_meters"`
	Label        string        `json:"label"`
	Anchor       geo.Point     `json:"anchor"`
	Ring         *geom.Polygon `json:"-"`
}

// Vertices returns the closed ring coordinates.
func (a Annotation) Vertices() []geom.Coord {
	if a.Ring == nil {
		return nil
	}
	return a.Ring.LinearRing(0).Coords()
}

// Annotate builds an annotation for every radius > 0 around center. Rings
// are built concurrently and returned in index order. Absent rings (<= 0)
// are skipped; Index keeps each ring's position in radii.
func Annotate(ctx context.Context, center geo.Point, radii []float64, b Builder, labels *LabelFormatter) ([]Annotation, error) {
	slots := make([]*Annotation, len(radii))

	g, gctx := errgroup.WithContext(ctx)
	for i, radius := range radii {
		if radius <= 0 {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ring, err := b.BuildRing(center, radius)
			if err != nil {
				return err
			}
			slots[i] = &Annotation{
				Index:        i,
				RadiusMeters: radius,
				Label:        labels.Format(i, radius),
				Anchor:       LabelAnchor(center, radius),
				Ring:         ring,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Annotation, 0, len(radii))
	for _, a := range slots {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}
