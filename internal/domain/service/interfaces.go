package service

import (
	"context"

	"NewsPulse/internal/domain/models"
)

// SentimentScorer assigns a polarity scalar in [-1, +1] to headline text.
// Scoring is stateless per call; empty input scores 0.
type SentimentScorer interface {
	Score(text string) float64
	ScoreAll(ctx context.Context, items []models.NewsItem) ([]models.ScoredNews, error)
}

// Correlator computes a Pearson correlation with a two-sided p-value over
// paired daily sentiment and next-day return observations.
type Correlator interface {
	Correlate(symbol string, sentiment, returns []float64) models.CorrelationResult
}
