package models

import "time"

// NewsItem is a single raw news record. Immutable once loaded.
type NewsItem struct {
	Headline  string
	Publisher string
	Timestamp time.Time
	Symbol    string
}

// ScoredNews attaches a sentiment polarity in [-1, +1] to a news item.
// Derived per analysis session, never persisted.
type ScoredNews struct {
	NewsItem
	Sentiment float64
}

// SentimentLabel buckets a polarity score using the conventional VADER
// thresholds. Used only for distribution summaries.
func SentimentLabel(score float64) string {
	switch {
	case score > 0.05:
		return "positive"
	case score < -0.05:
		return "negative"
	default:
		return "neutral"
	}
}
