package profile

// RadiiSource looks up ring radii for a profile path.
type RadiiSource interface {
	Resolve(subject, activity, terrain, area string) ([]float64, bool)
}

// Resolver maps profiles to ring radii.
type Resolver struct {
	source RadiiSource
}

// NewResolver creates a Resolver over source.
func NewResolver(source RadiiSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve returns the ring radii for p. A profile with no data resolves to
// an empty list: no rings to draw, not an error.
func (r *Resolver) Resolve(p Profile) []float64 {
	if r == nil || r.source == nil {
		return []float64{}
	}
	radii, ok := r.source.Resolve(p.Subject, p.Activity, p.Terrain, p.Area)
	if !ok || radii == nil {
		return []float64{}
	}
	return radii
}
