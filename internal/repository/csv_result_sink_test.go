package repository

import (
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"NewsPulse/internal/domain/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVResultSink(dir, quietLogger(t))

	results := []models.CorrelationResult{
		{Symbol: "AAPL", Correlation: -0.003, PValue: 0.876, Observations: 2228},
		{Symbol: "TSLA", Correlation: math.NaN(), PValue: math.NaN(), Observations: 1, Undefined: true},
	}
	if err := sink.WriteSummary(context.Background(), results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "correlation_summary.csv"))
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "symbol" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][0] != "AAPL" || records[1][3] != "2228" {
		t.Fatalf("unexpected row %v", records[1])
	}
	// NaN stats serialize as empty cells
	if records[2][1] != "" || records[2][2] != "" {
		t.Fatalf("expected empty cells for NaN, got %v", records[2])
	}
}

func TestWriteAlignedDaily(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVResultSink(dir, quietLogger(t))

	rows := []models.AlignedDaily{
		{
			Symbol:        "AAPL",
			Date:          time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
			AvgSentiment:  0.25,
			NewsCount:     4,
			NextDayReturn: -1.5,
		},
	}
	if err := sink.WriteAlignedDaily(context.Background(), "AAPL", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "AAPL_aligned_daily.csv"))
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][1] != "2020-06-01" || records[1][3] != "4" {
		t.Fatalf("unexpected row %v", records[1])
	}
}

func TestWriteIndicators(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVResultSink(dir, quietLogger(t))

	series := &models.IndicatorSeries{
		Symbol:      "MSFT",
		Dates:       []time.Time{time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)},
		Close:       []float64{184.91},
		SMA:         []float64{math.NaN()},
		EMA:         []float64{math.NaN()},
		RSI:         []float64{math.NaN()},
		MACD:        []float64{math.NaN()},
		MACDSignal:  []float64{math.NaN()},
		MACDHist:    []float64{math.NaN()},
		DailyReturn: []float64{math.NaN()},
	}
	if err := sink.WriteIndicators(context.Background(), series); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "MSFT_indicators.csv"))
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(records))
	}
	if records[1][0] != "2020-06-01" {
		t.Fatalf("unexpected date cell %v", records[1])
	}
}

func TestSinkCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	sink := NewCSVResultSink(dir, quietLogger(t))
	if err := sink.WriteSummary(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "correlation_summary.csv")); err != nil {
		t.Fatalf("expected summary file: %v", err)
	}
}
