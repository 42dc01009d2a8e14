package repository

import (
	"context"

	"NewsPulse/internal/domain/models"
)

// NewsSource loads raw news records. Row-level problems are skipped by the
// implementation; only source-level failures surface as errors.
type NewsSource interface {
	Load(ctx context.Context) ([]models.NewsItem, error)
}

// BarSource loads the OHLCV series for one symbol, sorted ascending by date.
type BarSource interface {
	Load(ctx context.Context, symbol string) ([]models.Bar, error)
}

// ResultSink persists analysis output as flat files.
type ResultSink interface {
	WriteAlignedDaily(ctx context.Context, symbol string, rows []models.AlignedDaily) error
	WriteIndicators(ctx context.Context, series *models.IndicatorSeries) error
	WriteSummary(ctx context.Context, results []models.CorrelationResult) error
}
