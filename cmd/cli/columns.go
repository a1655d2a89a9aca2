package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/sevigo/docsheet/internal/config"
	"github.com/sevigo/docsheet/internal/core"
	"github.com/sevigo/docsheet/internal/logger"
	"github.com/sevigo/docsheet/internal/sheet"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [template]",
	Short: "Shows which template column each component field is written to",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		path := cfg.TemplatePath
		if len(args) == 1 {
			path = args[0]
		}

		writer, closeLog, err := logger.OpenOutput(cfg.Logging)
		if err != nil {
			return err
		}
		defer closeLog()

		wb, err := sheet.OpenTemplate(path, cfg.SheetTitle, logger.NewLogger(cfg.Logging, writer))
		if err != nil {
			return err
		}
		defer wb.Close()

		rows, err := columnRows(wb.Headers(), sheet.MapColumns(wb.Headers()))
		if err != nil {
			return err
		}

		source := path
		if !wb.FromTemplate() {
			source = "new workbook (template unreadable)"
		}
		fmt.Fprintf(os.Stdout, "Sheet %q from %s\n", wb.Sheet(), source)
		fmt.Fprintln(os.Stdout, newTable([]string{"FIELD", "COLUMN", "HEADER"}, rows, 1))
		return nil
	},
}

func columnRows(headers []string, cols core.ColumnMap) ([][]string, error) {
	rows := make([][]string, 0, len(cols))
	for _, field := range core.Fields() {
		col, ok := cols[field]
		if !ok {
			rows = append(rows, []string{string(field), "-", "(not written)"})
			continue
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, fmt.Errorf("invalid column %d for %s: %w", col, field, err)
		}
		header := ""
		if col <= len(headers) {
			header = headers[col-1]
		}
		rows = append(rows, []string{string(field), name, header})
	}
	return rows, nil
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(columnsCmd)
}
