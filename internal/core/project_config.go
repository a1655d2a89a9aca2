package core

// ProjectConfig represents the structure of the .docsheet.yml file.
type ProjectConfig struct {
	// Directory names excluded in addition to the built-in denylist.
	// Example: ["generated", "Migrations"]
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Extra classification rules, evaluated before the built-in table.
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec is the declarative form of a classification rule.
type RuleSpec struct {
	Name         string `yaml:"name"`
	PathPrefix   string `yaml:"path_prefix"`
	PathContains string `yaml:"path_contains"`
	NameContains string `yaml:"name_contains"`
	Extension    string `yaml:"extension"`

	// Pattern must contain exactly one capture group holding the component name.
	Pattern string `yaml:"pattern"`
	// FromFileName takes the component name from the file name instead of a pattern.
	FromFileName bool `yaml:"from_file_name"`

	// Suffix is stripped from the component name to form {base}.
	Suffix string `yaml:"suffix"`

	Purpose string `yaml:"purpose"`
	// Description may reference {name} and {base}.
	Description  string `yaml:"description"`
	Dependencies string `yaml:"dependencies"`
}

// DefaultProjectConfig returns a config with default values.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		ExcludeDirs: []string{},
		Rules:       []RuleSpec{},
	}
}
