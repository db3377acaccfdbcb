package rings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		index  int
		radius float64
		want   string
	}{
		{0, 1500, "25%: 1,500m"},
		{1, 1000, "50%: 1,000m"},
		{2, 2400, "75%: 2,400m"},
		{3, 12800, "95%: 12,800m"},
		{4, 1500, "1,500m"},
		{-1, 1500, "1,500m"},
		{1, 0, "50%: 0m"},
		{0, -300, "25%: -300m"},
		{0, 300, "25%: 300m"},
		{3, 1234567, "95%: 1,234,567m"},
		{0, 999.4, "25%: 999m"},
		{0, 2.5, "25%: 2m"},
		{0, 3.5, "25%: 4m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLabel(tt.index, tt.radius), "index=%d radius=%v", tt.index, tt.radius)
	}
}

func TestFormatLabel_Deterministic(t *testing.T) {
	assert.Equal(t, FormatLabel(2, 4800), FormatLabel(2, 4800))
}

func TestPercentileLabel(t *testing.T) {
	label, ok := PercentileLabel(3)
	assert.True(t, ok)
	assert.Equal(t, "95%", label)

	_, ok = PercentileLabel(4)
	assert.False(t, ok)
}

func TestLabelFormatter_Locale(t *testing.T) {
	de := NewLabelFormatter(language.German)
	assert.Equal(t, "25%: 12.800m", de.Format(0, 12800))

	us, err := ParseLocale("en-US")
	require.NoError(t, err)
	assert.Equal(t, "12,800m", us.Format(7, 12800))

	_, err = ParseLocale("not a locale!")
	assert.Error(t, err)
}

func TestLabelFormatter_NilUsesDefault(t *testing.T) {
	var f *LabelFormatter
	assert.Equal(t, "50%: 1,000m", f.Format(1, 1000))
}

func TestFormatLabel_HugeRadius(t *testing.T) {
	got := FormatLabel(0, 1e19)
	assert.True(t, strings.HasPrefix(got, "25%: 10,000,000,000,"), got)
	assert.True(t, strings.HasSuffix(got, "m"), got)

	got = FormatLabel(4, -1e19)
	assert.True(t, strings.HasPrefix(got, "-10,000,000,000,"), got)
}
