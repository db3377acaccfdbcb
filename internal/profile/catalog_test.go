package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTable struct {
	categories []string
	activities map[string][]string
}

func (f fakeTable) Categories() []string { return f.categories }

func (f fakeTable) ActivitiesFor(subject string) []string {
	if a, ok := f.activities[subject]; ok {
		return a
	}
	return []string{}
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	require.Len(t, c.Categories, 8)

	aircraft, ok := c.Lookup("Aircraft")
	require.True(t, ok)
	assert.Equal(t, 1, aircraft.Priority)
	assert.Equal(t, "Low-Altitude Flight", aircraft.DefaultActivities[0].Label)

	_, ok = c.Lookup("Spacecraft")
	assert.False(t, ok)
}

func TestCatalog_Pick(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	cat, ok := c.Pick("Snow Activity", "Child", "Water")
	require.True(t, ok)
	assert.Equal(t, "Water", cat.Label)

	_, ok = c.Pick("Unknown")
	assert.False(t, ok)

	_, ok = c.Pick()
	assert.False(t, ok)
}

func TestCatalog_ForTable(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tbl := fakeTable{categories: []string{"Child", "Mystery", "Aircraft"}}
	got := c.ForTable(tbl)

	require.Len(t, got, 2)
	assert.Equal(t, "Child", got[0].Label)
	assert.Equal(t, "Aircraft", got[1].Label)
}

func TestCatalog_ActivitiesFor(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tbl := fakeTable{activities: map[string][]string{"Child": {"Ages 1-3"}}}

	assert.Equal(t, []string{"Ages 1-3"}, c.ActivitiesFor(tbl, "Child"))
	assert.Equal(t, []string{"Powered Boat", "Non-Powered Boat"}, c.ActivitiesFor(tbl, "Water"))
	assert.Empty(t, c.ActivitiesFor(tbl, "Mystery"))
}

func TestParseCatalog_Errors(t *testing.T) {
	_, err := ParseCatalog([]byte("catalog: [unclosed"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("catalog:\n  categories:\n    - priority: 1\n"))
	assert.Error(t, err)

	dup := "catalog:\n  categories:\n    - label: Water\n    - label: Water\n"
	_, err = ParseCatalog([]byte(dup))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	doc := `
catalog:
  categories:
    - label: Dog Walker
      priority: 2
      default_activities:
        - label: Urban Walk
          description: leashed dog
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Categories, 1)
	assert.Equal(t, "leashed dog", c.Categories[0].DefaultActivities[0].Description)

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
