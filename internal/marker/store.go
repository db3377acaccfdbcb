// Package marker holds the planner's map markers.
package marker

import (
	"sync"

	"github.com/sells-group/autosar-cli/internal/geo"
)

// Store keeps the current IPP marker. It holds at most one marker: placing
// a marker always replaces the previous one. This is intentional, the
// planning surface works from a single IPP.
type Store struct {
	mu      sync.RWMutex
	markers []geo.Point
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetSingleMarker clears all markers, then sets p as the only marker.
func (s *Store) SetSingleMarker(p geo.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = nil
	s.markers = append(s.markers, p)
}

// Clear removes all markers.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = nil
}

// Markers returns a copy of the current markers.
func (s *Store) Markers() []geo.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]geo.Point, len(s.markers))
	copy(out, s.markers)
	return out
}

// Primary returns the IPP marker, or nil when none is set.
func (s *Store) Primary() *geo.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.markers) == 0 {
		return nil
	}
	p := s.markers[0]
	return &p
}
