package wire

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/sevigo/docsheet/internal/app"
	"github.com/sevigo/docsheet/internal/classify"
	"github.com/sevigo/docsheet/internal/config"
	"github.com/sevigo/docsheet/internal/core"
	"github.com/sevigo/docsheet/internal/gitutil"
	"github.com/sevigo/docsheet/internal/logger"
	"github.com/sevigo/docsheet/internal/scan"
)

var ClassifierSet = wire.NewSet(
	config.LoadConfig,
	provideLogger,
	provideProjectConfig,
	provideProjectRules,
	provideClassifier,
)

var AppSet = wire.NewSet(
	ClassifierSet,
	app.New,
	gitutil.NewClient,
	provideEnumerator,
	provideProgressWriter,
	wire.Bind(new(app.FileSource), new(*scan.Enumerator)),
	wire.Bind(new(app.Classifier), new(*classify.Classifier)),
	wire.Bind(new(app.CommitResolver), new(*gitutil.Client)),
)

func provideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	writer, closeLog, err := logger.OpenOutput(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewLogger(cfg.Logging, writer), closeLog, nil
}

func provideProjectConfig(cfg *config.Config, logger *slog.Logger) (*core.ProjectConfig, error) {
	projectCfg, err := config.LoadProjectConfig(cfg.Project.Root)
	if errors.Is(err, config.ErrConfigNotFound) {
		logger.Debug("no project config found, using defaults", "root", cfg.Project.Root)
		return projectCfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ProjectConfigFile, err)
	}
	return projectCfg, nil
}

func provideProjectRules(projectCfg *core.ProjectConfig) ([]classify.Rule, error) {
	rules, err := classify.CompileRules(projectCfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rule in %s: %w", config.ProjectConfigFile, err)
	}
	return rules, nil
}

func provideClassifier(cfg *config.Config, rules []classify.Rule, logger *slog.Logger) *classify.Classifier {
	return classify.New(logger,
		classify.WithExtensions(cfg.Scan.Extensions),
		classify.WithProjectRules(rules),
		classify.WithFallbackOnMiss(cfg.Classify.FallbackOnMiss),
	)
}

func provideEnumerator(cfg *config.Config, projectCfg *core.ProjectConfig, logger *slog.Logger) *scan.Enumerator {
	excludes := append(append([]string(nil), cfg.Scan.ExcludeDirs...), projectCfg.ExcludeDirs...)
	return scan.NewEnumerator(cfg.Project.Root, cfg.Project.Roots(), excludes, logger)
}

func provideProgressWriter() io.Writer {
	return os.Stdout
}
