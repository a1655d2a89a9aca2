package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/docsheet/internal/core"
)

func TestMapColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    core.ColumnMap
	}{
		{
			name:    "canonical headers",
			headers: CanonicalHeaders,
			want:    core.DefaultColumnMap(),
		},
		{
			name:    "reordered and mixed case",
			headers: []string{"STATUS", "File Path", "Module Name"},
			want: core.ColumnMap{
				core.FieldStatus:    1,
				core.FieldFilePath:  2,
				core.FieldComponent: 3,
			},
		},
		{
			name:    "dependency notes resolves to dependencies",
			headers: []string{"Component", "Dependency Notes"},
			want: core.ColumnMap{
				core.FieldComponent:    1,
				core.FieldDependencies: 2,
			},
		},
		{
			name:    "first matching header wins",
			headers: []string{"Notes", "Reviewer notes"},
			want: core.ColumnMap{
				core.FieldNotes: 1,
			},
		},
		{
			name:    "component checked before file",
			headers: []string{"Component file"},
			want: core.ColumnMap{
				core.FieldComponent: 1,
			},
		},
		{
			name:    "what without does is ignored",
			headers: []string{"What", "What it does"},
			want: core.ColumnMap{
				core.FieldWhatItDoes: 2,
			},
		},
		{
			name:    "blank columns keep their position",
			headers: []string{"", "Purpose"},
			want: core.ColumnMap{
				core.FieldPurpose: 2,
			},
		},
		{
			name:    "nothing recognised falls back to default layout",
			headers: []string{"Owner", "Date"},
			want:    core.DefaultColumnMap(),
		},
		{
			name:    "no headers",
			headers: nil,
			want:    core.DefaultColumnMap(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapColumns(tt.headers))
		})
	}
}
