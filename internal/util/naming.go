package util

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultSheetName is used when a requested sheet title sanitizes to nothing.
const DefaultSheetName = "Project Components"

var sheetNameRegexp = regexp.MustCompile(`[:\\/?*\[\]]+`)

// SanitizeSheetName turns an arbitrary title into a legal worksheet name:
// no : \ / ? * [ ] characters, no surrounding apostrophes, at most 31 characters.
func SanitizeSheetName(title string) string {
	name := sheetNameRegexp.ReplaceAllString(title, " ")
	name = strings.Join(strings.Fields(name), " ")
	name = strings.Trim(name, "'")

	const maxSheetNameLength = 31
	if utf8.RuneCountInString(name) > maxSheetNameLength {
		name = strings.TrimSpace(string([]rune(name)[:maxSheetNameLength]))
	}
	if name == "" {
		return DefaultSheetName
	}
	return name
}

// FeatureFromPath returns the folder that follows the first "features/"
// segment of a slash-separated path, or "" when there is none.
func FeatureFromPath(path string) string {
	_, rest, ok := strings.Cut(path, "features/")
	if !ok {
		return ""
	}
	feature, _, _ := strings.Cut(rest, "/")
	return feature
}
