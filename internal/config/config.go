package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/sevigo/docsheet/internal/logger"
	"github.com/sevigo/docsheet/internal/util"
)

// EnvPrefix is prepended to every environment override, e.g. DOCSHEET_TEMPLATE.
const EnvPrefix = "DOCSHEET"

// DefaultOutputName is the workbook written below <root>/Documentation when no output is configured.
const DefaultOutputName = "Project_Filled.xlsx"

var (
	defaultBackendDirs = []string{"Dubox.Api", "Dubox.Application", "Dubox.Domain", "Dubox.Infrastructure"}
	defaultExcludeDirs = []string{
		"node_modules", "bin", "obj", "dist", ".angular", ".vscode",
		"coverage", "logs", "wwwroot", "packages", "out-tsc", ".git",
	}
	defaultExtensions = []string{".cs", ".ts", ".html", ".scss"}

	// Extensions excelize can save.
	workbookExtensions = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}
)

// Config holds the application's configuration values.
type Config struct {
	TemplatePath  string         `mapstructure:"template"`
	Project       ProjectPaths   `mapstructure:"project"`
	OutputPath    string         `mapstructure:"output"`
	SheetTitle    string         `mapstructure:"sheet_title"`
	Scan          ScanConfig     `mapstructure:"scan"`
	Classify      ClassifyConfig `mapstructure:"classify"`
	ProgressEvery int            `mapstructure:"progress_every"`
	Summary       bool           `mapstructure:"summary"`
	Logging       logger.Config  `mapstructure:"logging"`
}

// ProjectPaths locates the project tree being documented.
type ProjectPaths struct {
	Root        string   `mapstructure:"root"`
	BackendDirs []string `mapstructure:"backend_dirs"`
	FrontendDir string   `mapstructure:"frontend_dir"`
}

// ScanConfig controls file enumeration.
type ScanConfig struct {
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
	Extensions  []string `mapstructure:"extensions"`
}

// ClassifyConfig controls the rule cascade.
type ClassifyConfig struct {
	// FallbackOnMiss lets a file whose owning rule found no match be retried
	// with the generic declaration rule instead of being dropped.
	FallbackOnMiss bool `mapstructure:"fallback_on_miss"`
}

// Roots returns the scan roots relative to the project root, backend dirs first.
func (p ProjectPaths) Roots() []string {
	roots := slices.Clone(p.BackendDirs)
	if p.FrontendDir != "" {
		roots = append(roots, p.FrontendDir)
	}
	return roots
}

// LoadConfig reads configuration from an optional docsheet.yaml file,
// DOCSHEET_* environment variables (a .env file in the working directory is
// loaded first) and bound CLI flags, sets defaults, and validates the result.
// It uses the Viper library to handle precedence.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if file := viper.GetString("config"); file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("docsheet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
		}
	} else {
		slog.Debug("loaded config file", "path", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParsing, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("config", "")
	viper.SetDefault("template", "DUBOX Tracking Application.xls")
	viper.SetDefault("project.root", ".")
	viper.SetDefault("project.backend_dirs", defaultBackendDirs)
	viper.SetDefault("project.frontend_dir", "dubox-frontend/src/app")
	viper.SetDefault("output", "")
	viper.SetDefault("sheet_title", "Project Components")
	viper.SetDefault("scan.exclude_dirs", defaultExcludeDirs)
	viper.SetDefault("scan.extensions", defaultExtensions)
	viper.SetDefault("classify.fallback_on_miss", false)
	viper.SetDefault("progress_every", 50)
	viper.SetDefault("summary", false)
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")
}

func (c *Config) normalize() {
	c.Project.Root = filepath.Clean(c.Project.Root)
	if c.OutputPath == "" {
		c.OutputPath = filepath.Join(c.Project.Root, "Documentation", DefaultOutputName)
	}

	exts := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Scan.Extensions = exts

	c.SheetTitle = util.SanitizeSheetName(c.SheetTitle)
	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.TemplatePath == "" {
		return fmt.Errorf("template path must be set")
	}
	if c.Project.Root == "" {
		return fmt.Errorf("project root must be set")
	}
	if len(c.Project.Roots()) == 0 {
		return fmt.Errorf("at least one backend or frontend directory must be configured")
	}
	for _, dir := range c.Project.Roots() {
		if filepath.IsAbs(dir) || strings.HasPrefix(filepath.Clean(filepath.FromSlash(dir)), "..") {
			return fmt.Errorf("scan directory %q must be relative to the project root", dir)
		}
	}
	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("at least one source extension must be configured")
	}
	ext := strings.ToLower(filepath.Ext(c.OutputPath))
	if !slices.Contains(workbookExtensions, ext) {
		return fmt.Errorf("output %q must have one of the extensions %s", c.OutputPath, strings.Join(workbookExtensions, ", "))
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress_every must not be negative, got %d", c.ProgressEvery)
	}
	return nil
}
