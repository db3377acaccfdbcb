package export

import (
	"regexp"
	"strings"
)

// DefaultFileName is used when no usable name hint is given.
const DefaultFileName = "autosar_export"

// Extension is appended to every GeoJSON export.
const Extension = ".json"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9 _.\-]+`)

// SanitizeFileName turns a user-supplied hint into a safe file name ending
// in .json. Path separators and other unsafe characters become "_"; an empty
// result falls back to DefaultFileName.
func SanitizeFileName(hint string) string {
	name := strings.TrimSpace(hint)
	if strings.HasSuffix(strings.ToLower(name), Extension) {
		name = name[:len(name)-len(Extension)]
	}
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, " ._")
	if name == "" {
		name = DefaultFileName
	}
	return name + Extension
}

// BaseName strips the export extension from a sanitized file name.
func BaseName(fileName string) string {
	return strings.TrimSuffix(fileName, Extension)
}
