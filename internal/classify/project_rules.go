package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sevigo/docsheet/internal/core"
)

// CompileRules converts project rule specs into rules, preserving order.
func CompileRules(specs []core.RuleSpec) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		rule, err := compileRule(spec)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, spec.Name, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func compileRule(spec core.RuleSpec) (Rule, error) {
	if spec.Name == "" {
		return Rule{}, fmt.Errorf("name is required")
	}
	if spec.PathPrefix == "" && spec.PathContains == "" && spec.NameContains == "" && spec.Extension == "" {
		return Rule{}, fmt.Errorf("at least one of path_prefix, path_contains, name_contains or extension is required")
	}

	rule := Rule{
		Name:         spec.Name,
		PathPrefix:   spec.PathPrefix,
		PathContains: spec.PathContains,
		NameContains: spec.NameContains,
		Ext:          strings.ToLower(spec.Extension),
		Suffix:       spec.Suffix,
		Purpose:      spec.Purpose,
		Dependencies: spec.Dependencies,
	}
	if rule.Ext != "" && !strings.HasPrefix(rule.Ext, ".") {
		rule.Ext = "." + rule.Ext
	}

	switch {
	case spec.FromFileName && spec.Pattern != "":
		return Rule{}, fmt.Errorf("pattern and from_file_name are mutually exclusive")
	case spec.FromFileName:
		rule.FileSuffix = rule.Ext
	case spec.Pattern != "":
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("invalid pattern: %w", err)
		}
		if re.NumSubexp() != 1 {
			return Rule{}, fmt.Errorf("pattern must have exactly one capture group, found %d", re.NumSubexp())
		}
		rule.Pattern = re
	default:
		return Rule{}, fmt.Errorf("either pattern or from_file_name is required")
	}

	if spec.Description != "" {
		template := spec.Description
		rule.Describe = func(m Match) string {
			return strings.NewReplacer("{name}", m.Name, "{base}", m.Base).Replace(template)
		}
	}
	return rule, nil
}
