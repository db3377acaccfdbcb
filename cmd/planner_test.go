package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCommand(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "PRIORITY")
	assert.Contains(t, lines[1], "Aircraft")
	assert.Contains(t, out, "Snow Activity")
}

func TestOptionsCommand_Levels(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "Outdoor Activity")

	out, err = execute(t, "options", "--subject", "Outdoor Activity")
	require.NoError(t, err)
	assert.Equal(t, "Hiker\nHunter\nGatherer\nClimber\n", out)

	out, err = execute(t, "options", "--subject", "Outdoor Activity", "--activity", "Hiker")
	require.NoError(t, err)
	assert.Equal(t, "Mountainous\nFlat\n", out)

	out, err = execute(t, "options", "--subject", "Outdoor Activity", "--activity", "Hiker", "--terrain", "Mountainous")
	require.NoError(t, err)
	assert.Equal(t, "Wilderness\nRural\n", out)
}

func TestOptionsCommand_UnknownParent(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "options", "--subject", "Aircraft", "--activity", "Gliding", "--terrain", "Flat")
	require.NoError(t, err)
	assert.Empty(t, out)
}

type resolveOutput struct {
	Profile struct {
		Subject string `json:"subject"`
	} `json:"profile"`
	Rings []resolvedRing `json:"rings"`
}

func TestResolveCommand_JSON(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "resolve", "--json",
		"--subject", "Aircraft", "--activity", "Low-Altitude Flight", "--terrain", "Forest", "--area", "Rural")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Aircraft", got.Profile.Subject)
	assert.Equal(t, []resolvedRing{
		{Index: 0, RadiusMeters: 300, Label: "25%: 300m"},
		{Index: 1, RadiusMeters: 1000, Label: "50%: 1,000m"},
		{Index: 2, RadiusMeters: 2400, Label: "75%: 2,400m"},
		{Index: 3, RadiusMeters: 12800, Label: "95%: 12,800m"},
	}, got.Rings)
}

func TestResolveCommand_HighestPrioritySubjectWins(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "resolve", "--json",
		"--subject", "Child,Aircraft", "--activity", "Low-Altitude Flight", "--terrain", "Forest", "--area", "Rural")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Aircraft", got.Profile.Subject)
	assert.Len(t, got.Rings, 4)
}

func TestResolveCommand_MissIsEmpty(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "resolve", "--json", "--subject", "Aircraft", "--activity", "Ballooning")
	require.NoError(t, err)

	var got resolveOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Rings)
}

func TestResolveCommand_CustomLookupFile(t *testing.T) {
	dir := chdirTemp(t)
	doc := `{"Aircraft":{"Low-Altitude Flight":{"Forest":{"25%":{"ringRadii":[300,1000,2400,12800]}}}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lpb.json"), []byte(doc), 0o644))
	t.Setenv("AUTOSAR_LOOKUP_PATH", filepath.Join(dir, "lpb.json"))

	out, err := execute(t, "resolve",
		"--subject", "Aircraft", "--activity", "Low-Altitude Flight", "--terrain", "Forest", "--area", "25%")
	require.NoError(t, err)
	assert.Contains(t, out, "95%: 12,800m")
}

func TestResolveCommand_BadLookupFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lpb.json"), []byte("{broken"), 0o644))
	t.Setenv("AUTOSAR_LOOKUP_PATH", filepath.Join(dir, "lpb.json"))

	_, err := execute(t, "resolve", "--subject", "Aircraft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load lookup table")
}

func TestRingsCommand(t *testing.T) {
	chdirTemp(t)

	out, err := execute(t, "rings", "--radii", "300,0,2400", "--lng", "-98.0", "--lat", "39.5")
	require.NoError(t, err)

	assert.Contains(t, out, "IPP")
	assert.Contains(t, out, "25%: 300m")
	assert.Contains(t, out, "75%: 2,400m")
	assert.NotContains(t, out, "50%")
	assert.Contains(t, out, "361")
}

func TestRingsCommand_RequiresCenter(t *testing.T) {
	chdirTemp(t)

	_, err := execute(t, "rings", "--radii", "300")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--lng and --lat")
}

func TestRingsCommand_InvalidLatitude(t *testing.T) {
	chdirTemp(t)

	_, err := execute(t, "rings", "--radii", "300", "--lng", "0", "--lat", "95")
	assert.Error(t, err)
}
