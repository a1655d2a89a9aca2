package sheet

import (
	"strings"

	"github.com/sevigo/docsheet/internal/core"
)

// CanonicalHeaders is the header row of a freshly created workbook, in column order.
var CanonicalHeaders = []string{
	"Component / Module",
	"File / Path",
	"Purpose",
	"What it does",
	"Dependencies",
	"Status",
	"Notes",
}

type marker struct {
	field core.Field
	match func(header string) bool
}

func containsAny(subs ...string) func(string) bool {
	return func(h string) bool {
		for _, s := range subs {
			if strings.Contains(h, s) {
				return true
			}
		}
		return false
	}
}

func containsAll(subs ...string) func(string) bool {
	return func(h string) bool {
		for _, s := range subs {
			if !strings.Contains(h, s) {
				return false
			}
		}
		return true
	}
}

// Checked in order; the first marker that matches claims the header.
var markers = []marker{
	{field: core.FieldComponent, match: containsAny("component", "module")},
	{field: core.FieldFilePath, match: containsAny("file", "path")},
	{field: core.FieldPurpose, match: containsAny("purpose")},
	{field: core.FieldWhatItDoes, match: containsAll("what", "does")},
	{field: core.FieldDependencies, match: containsAny("dependenc")},
	{field: core.FieldStatus, match: containsAny("status")},
	{field: core.FieldNotes, match: containsAny("note")},
}

// MapColumns infers which column holds each field from the header texts.
// Matching is case-insensitive and a field keeps the first column it is
// assigned. When nothing matches, the canonical 1..7 layout is returned.
func MapColumns(headers []string) core.ColumnMap {
	cols := make(core.ColumnMap)
	for i, header := range headers {
		h := strings.ToLower(header)
		for _, m := range markers {
			if !m.match(h) {
				continue
			}
			if _, taken := cols[m.field]; !taken {
				cols[m.field] = i + 1
			}
			break
		}
	}
	if len(cols) == 0 {
		return core.DefaultColumnMap()
	}
	return cols
}
