// Package sheet reads documentation templates and writes component rows into them.
package sheet

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/xuri/excelize/v2"

	"github.com/sevigo/docsheet/internal/core"
	"github.com/sevigo/docsheet/internal/util"
)

// ErrOutputLocked is returned when another process is writing the same output file.
var ErrOutputLocked = errors.New("output file is locked by another process")

// Workbook is an open spreadsheet plus the sheet rows are written to.
type Workbook struct {
	file         *excelize.File
	sheet        string
	headers      []string
	fromTemplate bool
}

// Properties are the document properties stamped on the saved workbook.
type Properties struct {
	Title       string
	Creator     string
	Description string
	Identifier  string
}

// OpenTemplate opens path as an OOXML workbook and reads its header row from
// the active sheet. Legacy .xls files, corrupt files and missing paths are
// replaced by a new workbook titled title with the canonical headers.
func OpenTemplate(path, title string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}

	wb, err := openExisting(path)
	if err == nil {
		return wb, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("template not found, creating a new workbook", "path", path)
	} else {
		logger.Warn("template could not be read, creating a new workbook", "path", path, "error", err)
	}
	return NewWorkbook(title)
}

func openExisting(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	wb := &Workbook{
		file:         f,
		sheet:        f.GetSheetName(f.GetActiveSheetIndex()),
		fromTemplate: true,
	}
	if err := wb.loadHeaders(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return wb, nil
}

func (w *Workbook) loadHeaders() error {
	rows, err := w.file.GetRows(w.sheet)
	if err != nil {
		return fmt.Errorf("failed to read rows of sheet %q: %w", w.sheet, err)
	}
	if len(rows) > 0 {
		w.headers = rows[0]
	}
	for _, h := range w.headers {
		if h != "" {
			return nil
		}
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	headers := toAny(CanonicalHeaders)
	if err := w.file.SetSheetRow(w.sheet, cell, &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	w.headers = append([]string(nil), CanonicalHeaders...)
	return nil
}

// NewWorkbook creates a workbook with one sheet holding the canonical header row.
func NewWorkbook(title string) (*Workbook, error) {
	f := excelize.NewFile()
	name := util.SanitizeSheetName(title)
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", name, err)
	}

	headers := toAny(CanonicalHeaders)
	if err := f.SetSheetRow(name, "A1", &headers); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	return &Workbook{
		file:    f,
		sheet:   name,
		headers: append([]string(nil), CanonicalHeaders...),
	}, nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Headers returns the header texts the column map is inferred from.
func (w *Workbook) Headers() []string { return w.headers }

// Sheet returns the name of the sheet rows are appended to.
func (w *Workbook) Sheet() string { return w.sheet }

// FromTemplate reports whether the workbook was loaded from the template file.
func (w *Workbook) FromTemplate() bool { return w.fromTemplate }

// MaxRow returns the index of the last row holding any value, 0 for an empty sheet.
func (w *Workbook) MaxRow() (int, error) {
	rows, err := w.file.GetRows(w.sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows of sheet %q: %w", w.sheet, err)
	}
	return len(rows), nil
}

// NextRow returns the first row after existing content, never less than 2.
func (w *Workbook) NextRow() (int, error) {
	maxRow, err := w.MaxRow()
	if err != nil {
		return 0, err
	}
	if maxRow > 1 {
		return maxRow + 1, nil
	}
	return 2, nil
}

// AppendRecords writes one row per record below the existing content. Each
// field goes to the column cols assigns it; unmapped fields are skipped.
// It returns the number of rows written.
func (w *Workbook) AppendRecords(cols core.ColumnMap, records []core.ComponentRecord) (int, error) {
	row, err := w.NextRow()
	if err != nil {
		return 0, err
	}

	for i, rec := range records {
		for _, field := range core.Fields() {
			col, ok := cols[field]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return i, fmt.Errorf("invalid cell for %s: %w", field, err)
			}
			if err := w.file.SetCellStr(w.sheet, cell, rec.Value(field)); err != nil {
				return i, fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
		row++
	}
	return len(records), nil
}

// SetProperties stamps document properties on the workbook.
func (w *Workbook) SetProperties(p Properties) error {
	now := time.Now().UTC().Format(time.RFC3339)
	return w.file.SetDocProps(&excelize.DocProperties{
		Title:       p.Title,
		Creator:     p.Creator,
		Description: p.Description,
		Identifier:  p.Identifier,
		Modified:    now,
		Created:     now,
	})
}

// Save writes the workbook to path, creating parent directories and
// replacing any existing file. The file is written to a temporary sibling and
// renamed into place while holding path + ".lock".
func (w *Workbook) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", lockPath, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrOutputLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	// excelize picks the content type from the extension, so the temp file keeps it.
	tmp, err := os.CreateTemp(dir, ".docsheet-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := w.file.SaveAs(tmpPath); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move workbook to %s: %w", path, err)
	}
	return nil
}

// Close releases the workbook's resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}
