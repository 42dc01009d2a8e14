package sentiment

import (
	"context"
	"strings"

	"github.com/jonreiter/govader"

	"NewsPulse/internal/domain/models"
	domsvc "NewsPulse/internal/domain/service"
)

// analyzer loads the VADER lexicon once at init; it is read-only afterwards.
var analyzer = govader.NewSentimentIntensityAnalyzer()

// VaderScorer scores headline polarity with the VADER compound score.
type VaderScorer struct{}

func NewVaderScorer() *VaderScorer { return &VaderScorer{} }

// Score returns a polarity scalar in [-1, +1]. Empty or whitespace-only
// input scores exactly 0.
func (s *VaderScorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	c := analyzer.PolarityScores(text).Compound
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return c
}

// ScoreAll maps news items to scored items, honoring cancellation between items.
func (s *VaderScorer) ScoreAll(ctx context.Context, items []models.NewsItem) ([]models.ScoredNews, error) {
	out := make([]models.ScoredNews, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, models.ScoredNews{
			NewsItem:  item,
			Sentiment: s.Score(item.Headline),
		})
	}
	return out, nil
}

var _ domsvc.SentimentScorer = (*VaderScorer)(nil)
