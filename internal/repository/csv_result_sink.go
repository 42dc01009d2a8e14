package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"NewsPulse/internal/domain/models"
	domrepo "NewsPulse/internal/domain/repository"
	"NewsPulse/pkg/logger"
)

const dateLayout = "2006-01-02"

// CSVResultSink writes analysis output as flat CSV files under a directory.
type CSVResultSink struct {
	dir string
	log *logger.Logger
}

func NewCSVResultSink(dir string, log *logger.Logger) domrepo.ResultSink {
	return &CSVResultSink{dir: dir, log: log}
}

func (s *CSVResultSink) WriteAlignedDaily(ctx context.Context, symbol string, rows []models.AlignedDaily) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{"symbol", "date", "avg_sentiment", "news_count", "next_day_return"})
	for _, r := range rows {
		records = append(records, []string{
			r.Symbol,
			r.Date.Format(dateLayout),
			formatFloat(r.AvgSentiment),
			strconv.Itoa(r.NewsCount),
			formatFloat(r.NextDayReturn),
		})
	}
	return s.writeFile(ctx, symbol+"_aligned_daily.csv", records)
}

func (s *CSVResultSink) WriteIndicators(ctx context.Context, series *models.IndicatorSeries) error {
	records := make([][]string, 0, len(series.Dates)+1)
	records = append(records, []string{
		"date", "close", "sma", "ema", "rsi", "macd", "macd_signal", "macd_hist", "daily_return",
	})
	for i, d := range series.Dates {
		records = append(records, []string{
			d.Format(dateLayout),
			formatFloat(series.Close[i]),
			formatFloat(series.SMA[i]),
			formatFloat(series.EMA[i]),
			formatFloat(series.RSI[i]),
			formatFloat(series.MACD[i]),
			formatFloat(series.MACDSignal[i]),
			formatFloat(series.MACDHist[i]),
			formatFloat(series.DailyReturn[i]),
		})
	}
	return s.writeFile(ctx, series.Symbol+"_indicators.csv", records)
}

func (s *CSVResultSink) WriteSummary(ctx context.Context, results []models.CorrelationResult) error {
	records := make([][]string, 0, len(results)+1)
	records = append(records, []string{"symbol", "correlation", "p_value", "observations"})
	for _, r := range results {
		records = append(records, []string{
			r.Symbol,
			formatFloat(r.Correlation),
			formatFloat(r.PValue),
			strconv.Itoa(r.Observations),
		})
	}
	return s.writeFile(ctx, "correlation_summary.csv", records)
}

func (s *CSVResultSink) writeFile(ctx context.Context, name string, records [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}

	s.log.Debug("results written", logger.String("path", path), logger.Int("rows", len(records)-1))
	return nil
}

// formatFloat renders NaN as an empty cell so downstream tools read the gap
// as a missing value.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
