package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used for all spherical math.
const EarthRadiusMeters = 6371008.8

// orb works on a sphere of radius orb.EarthRadius. Distances are scaled
// through this ratio so the angular distance is taken on the mean sphere.
const orbScale = orb.EarthRadius / EarthRadiusMeters

// Orb returns p as an orb point (lng, lat).
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb converts an orb point back to a Point.
func FromOrb(o orb.Point) Point {
	return Point{Lng: o.Lon(), Lat: o.Lat()}
}

// Destination returns the point reached by travelling meters from origin
// along the great circle with the given initial bearing (degrees clockwise
// from north). Negative distances travel in the opposite direction.
func Destination(origin Point, meters, bearingDeg float64) Point {
	return FromOrb(orbgeo.PointAtBearingAndDistance(origin.Orb(), bearingDeg, meters*orbScale))
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b Point) float64 {
	return orbgeo.DistanceHaversine(a.Orb(), b.Orb()) / orbScale
}
