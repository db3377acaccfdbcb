// Package geo provides WGS84 points and spherical-earth measurements used to
// place markers and range rings.
package geo

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// Point is a WGS84 position in decimal degrees.
type Point struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// NewPoint returns a validated point.
func NewPoint(lng, lat float64) (Point, error) {
	if lat < -90 || lat > 90 {
		return Point{}, eris.Errorf("geo: latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return Point{}, eris.Errorf("geo: longitude %v out of range", lng)
	}
	return Point{Lng: lng, Lat: lat}, nil
}

// Coord returns the point as an XY coordinate (lng, lat).
func (p Point) Coord() geom.Coord {
	return geom.Coord{p.Lng, p.Lat}
}

// Geom returns the point as an XY go-geom Point.
func (p Point) Geom() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat})
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lng, p.Lat)
}

// FromCoord converts an XY coordinate back to a Point.
func FromCoord(c geom.Coord) Point {
	return Point{Lng: c.X(), Lat: c.Y()}
}
