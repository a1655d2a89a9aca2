package app

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/sevigo/docsheet/internal/core"
)

type tally struct {
	label string
	count int
}

func countBy(records []core.ComponentRecord, key func(core.ComponentRecord) string) []tally {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	out := make([]tally, 0, len(counts))
	for label, n := range counts {
		out = append(out, tally{label: label, count: n})
	}
	slices.SortFunc(out, func(a, b tally) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.label, b.label)
	})
	return out
}

// Summary renders the run result as markdown: totals, then counts per
// purpose and per status, largest first.
func Summary(res *Result) string {
	var sb strings.Builder
	sb.WriteString("# Documentation summary\n\n")
	fmt.Fprintf(&sb, "- **Output:** `%s`\n", res.OutputPath)
	fmt.Fprintf(&sb, "- **Sheet:** %s\n", res.Sheet)
	if res.Commit != "" {
		fmt.Fprintf(&sb, "- **Commit:** `%s`\n", res.Commit)
	}
	if res.Revision != "" {
		fmt.Fprintf(&sb, "- **Revision:** %s\n", res.Revision)
	}
	fmt.Fprintf(&sb, "- **Files scanned:** %d\n", res.Scanned)
	fmt.Fprintf(&sb, "- **Files analyzed:** %d\n", res.Analyzed)
	fmt.Fprintf(&sb, "- **Components documented:** %d\n", len(res.Records))

	if len(res.Records) == 0 {
		return sb.String()
	}

	sb.WriteString("\n## By purpose\n\n| Purpose | Count |\n|---|---|\n")
	for _, t := range countBy(res.Records, func(r core.ComponentRecord) string { return r.Purpose }) {
		fmt.Fprintf(&sb, "| %s | %d |\n", t.label, t.count)
	}

	sb.WriteString("\n## By status\n\n| Status | Count |\n|---|---|\n")
	for _, t := range countBy(res.Records, func(r core.ComponentRecord) string { return string(r.Status) }) {
		fmt.Fprintf(&sb, "| %s | %d |\n", t.label, t.count)
	}
	return sb.String()
}

// RenderSummary formats the summary markdown for a terminal.
func RenderSummary(res *Result, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(Summary(res))
	if err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return out, nil
}
