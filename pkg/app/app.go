package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NewsPulse/internal/handler/report"
	"NewsPulse/internal/services/indicators"
	"NewsPulse/internal/usecase"
	"NewsPulse/pkg/config"
	applogger "NewsPulse/pkg/logger"
)

// App encapsulates one batch analysis run.
type App struct {
	cfg      *config.Config
	analysis *usecase.AnalysisUseCase
	log      *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, analysis *usecase.AnalysisUseCase, log *applogger.Logger) *App {
	return &App{cfg: cfg, analysis: analysis, log: log}
}

// Run executes the pipeline once and renders the summary table. An interrupt
// cancels the run between processing steps.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	a.log.Info("analysis starting",
		applogger.Strings("symbols", a.cfg.Symbols),
		applogger.String("news", a.cfg.Data.NewsPath),
		applogger.String("stocks", a.cfg.Data.StockDir))

	params := usecase.AnalysisParams{
		Symbols: a.cfg.Symbols,
		Indicators: indicators.Config{
			SMAPeriod:        a.cfg.Indicators.SMAPeriod,
			EMAPeriod:        a.cfg.Indicators.EMAPeriod,
			RSIPeriod:        a.cfg.Indicators.RSIPeriod,
			MACDFast:         a.cfg.Indicators.MACDFast,
			MACDSlow:         a.cfg.Indicators.MACDSlow,
			MACDSignal:       a.cfg.Indicators.MACDSignal,
			VolatilityWindow: a.cfg.Indicators.VolatilityWindow,
		},
		ExportIndicators: a.cfg.Indicators.Export,
	}

	results, err := a.analysis.Run(ctx, params)
	if err != nil {
		return err
	}

	report.RenderSummary(os.Stdout, results)
	a.log.Info("analysis complete",
		applogger.Int("symbols", len(results)),
		applogger.Duration("elapsed", time.Since(start)))
	return nil
}
