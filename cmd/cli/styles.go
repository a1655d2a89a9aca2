package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("240"))
)

// newTable returns a bordered table; columns listed in dim are rendered muted.
func newTable(headers []string, rows [][]string, dim ...int) *table.Table {
	muted := make(map[int]bool, len(dim))
	for _, c := range dim {
		muted[c] = true
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case muted[col]:
				return dimStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
}
