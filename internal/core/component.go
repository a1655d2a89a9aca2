// Package core defines the data structures shared by the scanning,
// classification and spreadsheet stages of the documentation pipeline.
package core

// FileDescriptor describes one file found under a project root.
type FileDescriptor struct {
	// Project-relative path using forward slashes (e.g., "Dubox.Api/Controllers/OrderController.cs").
	RelPath string
	// Absolute filesystem path.
	AbsPath string
	// Lowercased extension including the leading dot (e.g., ".cs").
	Ext string
	// Base name of the file.
	Name string
}

// Status marks how confident the classifier is about a record.
type Status string

const (
	StatusDone     Status = "Done"
	StatusNotClear Status = "Not Clear"
)

// ComponentRecord is one classified source file, written as a single sheet row.
type ComponentRecord struct {
	Component    string `json:"component"`
	FilePath     string `json:"file_path"`
	Purpose      string `json:"purpose"`
	WhatItDoes   string `json:"what_it_does"`
	Dependencies string `json:"dependencies"`
	Status       Status `json:"status"`
	Notes        string `json:"notes"`
}

// Field names a logical documentation column.
type Field string

const (
	FieldComponent    Field = "component"
	FieldFilePath     Field = "file_path"
	FieldPurpose      Field = "purpose"
	FieldWhatItDoes   Field = "what_it_does"
	FieldDependencies Field = "dependencies"
	FieldStatus       Field = "status"
	FieldNotes        Field = "notes"
)

// Fields returns every logical field in canonical column order.
func Fields() []Field {
	return []Field{
		FieldComponent,
		FieldFilePath,
		FieldPurpose,
		FieldWhatItDoes,
		FieldDependencies,
		FieldStatus,
		FieldNotes,
	}
}

// Value returns the text stored in the given field.
func (r ComponentRecord) Value(f Field) string {
	switch f {
	case FieldComponent:
		return r.Component
	case FieldFilePath:
		return r.FilePath
	case FieldPurpose:
		return r.Purpose
	case FieldWhatItDoes:
		return r.WhatItDoes
	case FieldDependencies:
		return r.Dependencies
	case FieldStatus:
		return string(r.Status)
	case FieldNotes:
		return r.Notes
	}
	return ""
}

// ColumnMap associates a logical field with its 1-based column index.
type ColumnMap map[Field]int

// DefaultColumnMap maps the fields to columns 1 through 7 in canonical order.
func DefaultColumnMap() ColumnMap {
	cols := make(ColumnMap, len(Fields()))
	for i, f := range Fields() {
		cols[f] = i + 1
	}
	return cols
}
