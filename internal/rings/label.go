package rings

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxExactMeters bounds radii formatted through int64.
const maxExactMeters = 1 << 62

// percentileLabels maps a ring index to its probability-of-area prefix.
var percentileLabels = [...]string{"25%", "50%", "75%", "95%"}

// PercentileLabel returns the prefix for index, or false when the index has none.
func PercentileLabel(index int) (string, bool) {
	if index < 0 || index >= len(percentileLabels) {
		return "", false
	}
	return percentileLabels[index], true
}

// LabelFormatter renders ring labels such as "75%: 1,500m" using the
// thousands grouping of a locale.
type LabelFormatter struct {
	tag language.Tag
}

// NewLabelFormatter returns a formatter for the given locale.
func NewLabelFormatter(tag language.Tag) *LabelFormatter {
	return &LabelFormatter{tag: tag}
}

// ParseLocale returns a formatter for a BCP 47 locale string such as "en-US".
func ParseLocale(locale string) (*LabelFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return NewLabelFormatter(tag), nil
}

var defaultFormatter = NewLabelFormatter(language.AmericanEnglish)

// FormatLabel formats a ring label with the default en-US grouping.
func FormatLabel(index int, radiusMeters float64) string {
	return defaultFormatter.Format(index, radiusMeters)
}

// Format returns "{prefix}: {radius}m" for indexes 0-3 and "{radius}m"
// otherwise. The radius is rounded half-to-even to whole meters. Non-positive
// radii are formatted as given.
func (f *LabelFormatter) Format(index int, radiusMeters float64) string {
	if f == nil {
		f = defaultFormatter
	}
	p := message.NewPrinter(f.tag)
	rounded := math.RoundToEven(radiusMeters)
	var radius string
	if math.Abs(rounded) < maxExactMeters {
		radius = p.Sprintf("%d", int64(rounded))
	} else {
		// Past int64 range, or NaN/Inf.
		radius = p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
	}

	if prefix, ok := PercentileLabel(index); ok {
		return prefix + ": " + radius + "m"
	}
	return radius + "m"
}
