//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/docsheet/internal/app"
	"github.com/sevigo/docsheet/internal/classify"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

func InitializeClassifier(ctx context.Context) (*classify.Classifier, func(), error) {
	wire.Build(ClassifierSet)
	return &classify.Classifier{}, nil, nil
}
