//go:build wireinject
// +build wireinject

package di

import (
	"NewsPulse/pkg/app"
	"NewsPulse/pkg/config"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,

		// Data sources and sinks
		ProvideNewsSource,
		ProvideBarSource,
		ProvideResultSink,

		// Analysis services
		ProvideSentimentScorer,
		ProvideCorrelator,

		// Use cases
		ProvideAnalysisUseCase,

		// Application
		ProvideApp,
	)
	return &app.App{}, nil
}
