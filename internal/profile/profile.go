// Package profile models the lost-person profile chosen by the planner and
// resolves it to LPB ring radii.
package profile

import "fmt"

// Profile is the (subject, activity, terrain, area) selection. The zero
// value is an empty selection. A new selection produces a new Profile.
type Profile struct {
	Subject  string `json:"subject" yaml:"subject"`
	Activity string `json:"activity" yaml:"activity"`
	Terrain  string `json:"terrain" yaml:"terrain"`
	Area     string `json:"area" yaml:"area"`
}

// New returns a profile from its four fields.
func New(subject, activity, terrain, area string) Profile {
	return Profile{Subject: subject, Activity: activity, Terrain: terrain, Area: area}
}

// Complete reports whether every field is set.
func (p Profile) Complete() bool {
	return p.Subject != "" && p.Activity != "" && p.Terrain != "" && p.Area != ""
}

// Description is the text attached to exported markers.
func (p Profile) Description() string {
	return fmt.Sprintf("Activity: %s\nTerrain: %s\nArea Type: %s", p.Activity, p.Terrain, p.Area)
}

func (p Profile) String() string {
	return fmt.Sprintf("%s / %s / %s / %s", p.Subject, p.Activity, p.Terrain, p.Area)
}
