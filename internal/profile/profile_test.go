package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_ZeroValue(t *testing.T) {
	var p Profile
	assert.Equal(t, "", p.Subject)
	assert.False(t, p.Complete())
}

func TestProfile_Complete(t *testing.T) {
	assert.True(t, New("Child", "Ages 1-3", "Flat", "Wilderness").Complete())
	assert.False(t, New("Child", "Ages 1-3", "Flat", "").Complete())
}

func TestProfile_Description(t *testing.T) {
	p := New("Outdoor Activity", "Hiker", "Mountainous", "Wilderness")
	assert.Equal(t, "Activity: Hiker\nTerrain: Mountainous\nArea Type: Wilderness", p.Description())
}

func TestProfile_String(t *testing.T) {
	p := New("Water", "Powered Boat", "Coastal", "Open Water")
	assert.Equal(t, "Water / Powered Boat / Coastal / Open Water", p.String())
}
