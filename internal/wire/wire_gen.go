// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/docsheet/internal/app"
	"github.com/sevigo/docsheet/internal/classify"
	"github.com/sevigo/docsheet/internal/config"
	"github.com/sevigo/docsheet/internal/gitutil"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	slogLogger, loggerCleanup, err := provideLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Project overrides
	projectCfg, err := provideProjectConfig(cfg, slogLogger)
	if err != nil {
		loggerCleanup()
		return nil, nil, err
	}
	rules, err := provideProjectRules(projectCfg)
	if err != nil {
		loggerCleanup()
		return nil, nil, err
	}

	// Pipeline components
	enumerator := provideEnumerator(cfg, projectCfg, slogLogger)
	classifier := provideClassifier(cfg, rules, slogLogger)
	gitClient := gitutil.NewClient(slogLogger)
	writer := provideProgressWriter()

	// App
	application := app.New(cfg, enumerator, classifier, gitClient, slogLogger, writer)

	cleanup := func() {
		loggerCleanup()
	}

	return application, cleanup, nil
}

// InitializeClassifier wires the classifier with the project's rules.
func InitializeClassifier(ctx context.Context) (*classify.Classifier, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	slogLogger, loggerCleanup, err := provideLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	projectCfg, err := provideProjectConfig(cfg, slogLogger)
	if err != nil {
		loggerCleanup()
		return nil, nil, err
	}
	rules, err := provideProjectRules(projectCfg)
	if err != nil {
		loggerCleanup()
		return nil, nil, err
	}

	classifier := provideClassifier(cfg, rules, slogLogger)
	return classifier, loggerCleanup, nil
}
