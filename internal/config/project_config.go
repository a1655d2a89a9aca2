package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sevigo/docsheet/internal/core"
)

// ProjectConfigFile is looked up at the project root.
const ProjectConfigFile = ".docsheet.yml"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParsing  = errors.New("config parsing failed")
)

// LoadProjectConfig loads and parses the .docsheet.yml file from a project root.
func LoadProjectConfig(root string) (*core.ProjectConfig, error) {
	configPath := filepath.Join(root, ProjectConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.DefaultProjectConfig(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", ProjectConfigFile, err)
	}

	cfg := core.DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}
	return cfg, nil
}
