package usecase

import (
	"context"
	"fmt"

	"NewsPulse/internal/domain/models"
	domrepo "NewsPulse/internal/domain/repository"
	domsvc "NewsPulse/internal/domain/service"
	"NewsPulse/internal/services/indicators"
	"NewsPulse/pkg/logger"
)

// AnalysisParams controls one batch run.
type AnalysisParams struct {
	Symbols          []string
	Indicators       indicators.Config
	ExportIndicators bool
}

// AnalysisUseCase runs the full pipeline: load news, score sentiment, align
// to trading days per symbol, pair with next-day returns, correlate, and
// write results. One sequential pass, no shared mutable state.
type AnalysisUseCase struct {
	news       domrepo.NewsSource
	bars       domrepo.BarSource
	scorer     domsvc.SentimentScorer
	correlator domsvc.Correlator
	sink       domrepo.ResultSink
	log        *logger.Logger
}

func NewAnalysisUseCase(
	news domrepo.NewsSource,
	bars domrepo.BarSource,
	scorer domsvc.SentimentScorer,
	correlator domsvc.Correlator,
	sink domrepo.ResultSink,
	log *logger.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		news:       news,
		bars:       bars,
		scorer:     scorer,
		correlator: correlator,
		sink:       sink,
		log:        log,
	}
}

// Run executes the analysis for every configured symbol and returns the
// per-symbol correlation results. A failure for one symbol is logged and
// skipped; only source-level failures abort the run.
func (uc *AnalysisUseCase) Run(ctx context.Context, p AnalysisParams) ([]models.CorrelationResult, error) {
	if len(p.Symbols) == 0 {
		return nil, fmt.Errorf("no symbols configured")
	}

	raw, err := uc.news.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load news: %w", err)
	}

	scored, err := uc.scorer.ScoreAll(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("score sentiment: %w", err)
	}
	uc.logSentimentDistribution(scored)

	results := make([]models.CorrelationResult, 0, len(p.Symbols))
	for _, symbol := range p.Symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := uc.runSymbol(ctx, symbol, scored, p)
		if err != nil {
			uc.log.Error("symbol analysis failed",
				logger.String("symbol", symbol), logger.Error(err))
			continue
		}
		results = append(results, result)
	}

	if err := uc.sink.WriteSummary(ctx, results); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	return results, nil
}

func (uc *AnalysisUseCase) runSymbol(ctx context.Context, symbol string, scored []models.ScoredNews, p AnalysisParams) (models.CorrelationResult, error) {
	var zero models.CorrelationResult

	bars, err := uc.bars.Load(ctx, symbol)
	if err != nil {
		return zero, fmt.Errorf("load bars: %w", err)
	}
	if len(bars) < 2 {
		return zero, fmt.Errorf("need at least 2 bars, got %d", len(bars))
	}

	series := indicators.Compute(symbol, bars, p.Indicators)
	if p.ExportIndicators {
		if err := uc.sink.WriteIndicators(ctx, series); err != nil {
			return zero, fmt.Errorf("write indicators: %w", err)
		}
	}
	vol := indicators.RealizedVolatility(
		indicators.LogReturns(series.Close), p.Indicators.VolatilityWindow, 252)
	uc.log.Debug("indicators computed",
		logger.String("symbol", symbol),
		logger.Int("bars", len(bars)),
		logger.Float64("realized_vol", vol))

	daily, dropped := AggregateDaily(symbol, scored, bars)
	if dropped > 0 {
		uc.log.Debug("news beyond last trading day dropped",
			logger.String("symbol", symbol), logger.Int("count", dropped))
	}
	if err := uc.sink.WriteAlignedDaily(ctx, symbol, daily); err != nil {
		return zero, fmt.Errorf("write aligned daily: %w", err)
	}

	sentiment := make([]float64, len(daily))
	returns := make([]float64, len(daily))
	for i, d := range daily {
		sentiment[i] = d.AvgSentiment
		returns[i] = d.NextDayReturn
	}
	result := uc.correlator.Correlate(symbol, sentiment, returns)
	if result.Undefined {
		uc.log.Warn("correlation undefined",
			logger.String("symbol", symbol), logger.Int("observations", result.Observations))
	} else {
		uc.log.Info("correlation computed",
			logger.String("symbol", symbol),
			logger.Float64("correlation", result.Correlation),
			logger.Float64("p_value", result.PValue),
			logger.Int("observations", result.Observations))
	}
	return result, nil
}

func (uc *AnalysisUseCase) logSentimentDistribution(scored []models.ScoredNews) {
	positive, negative, neutral := 0, 0, 0
	for _, s := range scored {
		switch models.SentimentLabel(s.Sentiment) {
		case "positive":
			positive++
		case "negative":
			negative++
		default:
			neutral++
		}
	}
	uc.log.Info("sentiment scored",
		logger.Int("total", len(scored)),
		logger.Int("positive", positive),
		logger.Int("negative", negative),
		logger.Int("neutral", neutral))
}
