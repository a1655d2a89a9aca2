package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/docsheet/internal/core"
)

func TestCompileRules(t *testing.T) {
	tests := []struct {
		name    string
		spec    core.RuleSpec
		wantErr string
	}{
		{
			name: "Pattern rule",
			spec: core.RuleSpec{Name: "hub", PathPrefix: "Dubox.Api/Hubs/", Pattern: `class\s+(\w+Hub)`},
		},
		{
			name: "File name rule",
			spec: core.RuleSpec{Name: "migration", PathContains: "/Migrations/", Extension: "cs", FromFileName: true},
		},
		{
			name:    "Missing name",
			spec:    core.RuleSpec{PathPrefix: "x/", Pattern: `(\w+)`},
			wantErr: "name is required",
		},
		{
			name:    "Missing condition",
			spec:    core.RuleSpec{Name: "any", Pattern: `(\w+)`},
			wantErr: "at least one of",
		},
		{
			name:    "Invalid regex",
			spec:    core.RuleSpec{Name: "bad", PathPrefix: "x/", Pattern: `class\s+(\w+`},
			wantErr: "invalid pattern",
		},
		{
			name:    "Two capture groups",
			spec:    core.RuleSpec{Name: "two", PathPrefix: "x/", Pattern: `(class|record)\s+(\w+)`},
			wantErr: "exactly one capture group",
		},
		{
			name:    "No extraction",
			spec:    core.RuleSpec{Name: "none", PathPrefix: "x/"},
			wantErr: "either pattern or from_file_name",
		},
		{
			name:    "Both extractions",
			spec:    core.RuleSpec{Name: "both", PathPrefix: "x/", Pattern: `(\w+)`, FromFileName: true},
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := CompileRules([]core.RuleSpec{tt.spec})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, rules, 1)
			assert.Equal(t, tt.spec.Name, rules[0].Name)
		})
	}
}

func TestCompileRules_FileNameRule(t *testing.T) {
	rules, err := CompileRules([]core.RuleSpec{{
		Name:         "migration",
		PathContains: "/Migrations/",
		Extension:    "CS",
		FromFileName: true,
		Purpose:      "EF Migration",
		Description:  "Schema change {name}",
	}})
	require.NoError(t, err)

	rule := rules[0]
	assert.Equal(t, ".cs", rule.Ext)

	fd := descriptor("Dubox.Infrastructure/Migrations/20240101_Init.cs")
	require.True(t, rule.Applies(fd))
	rec, ok := rule.Extract(fd, "")
	require.True(t, ok)
	assert.Equal(t, "20240101_Init", rec.Component)
	assert.Equal(t, "Schema change 20240101_Init", rec.WhatItDoes)
}

func TestRuleApplies(t *testing.T) {
	rule := Rule{PathPrefix: "dubox-frontend/src/app/", Ext: ".ts", NameContains: "guard.ts"}

	assert.True(t, rule.Applies(descriptor("dubox-frontend/src/app/core/auth.guard.ts")))
	assert.False(t, rule.Applies(descriptor("dubox-frontend/src/app/core/auth.guard.spec.js")))
	assert.False(t, rule.Applies(descriptor("dubox-frontend/src/lib/auth.guard.ts")))
	assert.False(t, rule.Applies(descriptor("dubox-frontend/src/app/core/auth.service.ts")))
}

func TestBuiltinRules_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range BuiltinRules() {
		assert.False(t, seen[r.Name], "duplicate rule name %s", r.Name)
		seen[r.Name] = true
		assert.NotEmpty(t, r.Purpose, r.Name)
		assert.NotEmpty(t, r.PathPrefix, r.Name)
	}
}

func TestRuleConditions(t *testing.T) {
	rule := Rule{PathPrefix: "dubox-frontend/src/app/", Ext: ".ts", NameContains: "guard.ts"}
	assert.Equal(t, "prefix dubox-frontend/src/app/, name has guard.ts, ext .ts", rule.Conditions())
	assert.Equal(t, "any file", FallbackRule().Conditions())
}
