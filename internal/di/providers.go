package di

import (
	"fmt"

	domrepo "NewsPulse/internal/domain/repository"
	domsvc "NewsPulse/internal/domain/service"
	internalrepo "NewsPulse/internal/repository"
	"NewsPulse/internal/services/analytics"
	"NewsPulse/internal/services/sentiment"
	"NewsPulse/internal/usecase"
	"NewsPulse/pkg/app"
	"NewsPulse/pkg/config"
	"NewsPulse/pkg/logger"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideNewsSource creates the CSV news source.
func ProvideNewsSource(cfg *config.Config, log *logger.Logger) domrepo.NewsSource {
	return internalrepo.NewCSVNewsSource(cfg.Data.NewsPath, log)
}

// ProvideBarSource creates the CSV OHLCV source.
func ProvideBarSource(cfg *config.Config, log *logger.Logger) domrepo.BarSource {
	return internalrepo.NewCSVBarSource(cfg.Data.StockDir, log)
}

// ProvideResultSink creates the CSV result sink.
func ProvideResultSink(cfg *config.Config, log *logger.Logger) domrepo.ResultSink {
	return internalrepo.NewCSVResultSink(cfg.Analysis.OutputDir, log)
}

// ProvideSentimentScorer creates the VADER scorer.
func ProvideSentimentScorer() domsvc.SentimentScorer {
	return sentiment.NewVaderScorer()
}

// ProvideCorrelator creates the Pearson correlation engine.
func ProvideCorrelator(cfg *config.Config) domsvc.Correlator {
	return analytics.NewPearsonEngine(cfg.Analysis.MinObservations)
}

// ProvideAnalysisUseCase assembles the pipeline use case.
func ProvideAnalysisUseCase(
	news domrepo.NewsSource,
	bars domrepo.BarSource,
	scorer domsvc.SentimentScorer,
	correlator domsvc.Correlator,
	sink domrepo.ResultSink,
	log *logger.Logger,
) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(news, bars, scorer, correlator, sink, log)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, analysis *usecase.AnalysisUseCase, log *logger.Logger) *app.App {
	return app.New(cfg, analysis, log)
}
