package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"NewsPulse/internal/domain/models"
	domrepo "NewsPulse/internal/domain/repository"
	"NewsPulse/pkg/logger"
	"NewsPulse/pkg/util"
)

// CSVBarSource reads per-symbol OHLCV files named <SYMBOL>.csv under a
// directory, with Date, Open, High, Low, Close, Volume columns.
type CSVBarSource struct {
	dir string
	log *logger.Logger
}

func NewCSVBarSource(dir string, log *logger.Logger) domrepo.BarSource {
	return &CSVBarSource{dir: dir, log: log}
}

func (s *CSVBarSource) Load(ctx context.Context, symbol string) ([]models.Bar, error) {
	path := filepath.Join(s.dir, symbol+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stock file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read stock header: %w", err)
	}
	cols := indexColumns(header)
	dateIdx, ok := pickColumn(cols, "date")
	if !ok {
		return nil, fmt.Errorf("stock file %s: no date column", path)
	}
	closeIdx, ok := pickColumn(cols, "close", "adj close")
	if !ok {
		return nil, fmt.Errorf("stock file %s: no close column", path)
	}
	openIdx, _ := pickColumn(cols, "open")
	highIdx, _ := pickColumn(cols, "high")
	lowIdx, _ := pickColumn(cols, "low")
	volIdx, _ := pickColumn(cols, "volume")

	var bars []models.Bar
	line := 1
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			skipped++
			s.log.Warn("skipping malformed bar row",
				logger.String("file", path), logger.Int("line", line), logger.Error(err))
			continue
		}
		if len(rec) <= dateIdx || len(rec) <= closeIdx {
			skipped++
			s.log.Warn("skipping short bar row",
				logger.String("file", path), logger.Int("line", line), logger.Int("fields", len(rec)))
			continue
		}
		ts, ok := util.ParseTime(strings.TrimSpace(rec[dateIdx]))
		if !ok {
			skipped++
			s.log.Warn("skipping bar row with bad date",
				logger.String("file", path), logger.Int("line", line), logger.String("value", rec[dateIdx]))
			continue
		}
		closePx, err := parsePrice(rec, closeIdx)
		if err != nil || closePx <= 0 {
			skipped++
			s.log.Warn("skipping bar row with bad close",
				logger.String("file", path), logger.Int("line", line))
			continue
		}
		bar := models.Bar{Date: util.Day(ts), Close: closePx}
		// Open/High/Low/Volume are optional for correlation; zero when absent.
		bar.Open, _ = parseOptional(rec, openIdx)
		bar.High, _ = parseOptional(rec, highIdx)
		bar.Low, _ = parseOptional(rec, lowIdx)
		bar.Volume, _ = parseOptional(rec, volIdx)
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	bars = dedupeBars(bars)

	s.log.Info("bars loaded",
		logger.String("symbol", symbol),
		logger.Int("rows", len(bars)),
		logger.Int("skipped", skipped))
	return bars, nil
}

func parsePrice(rec []string, idx int) (float64, error) {
	if idx < 0 || idx >= len(rec) {
		return 0, fmt.Errorf("column out of range")
	}
	return strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
}

func parseOptional(rec []string, idx int) (float64, bool) {
	v, err := parsePrice(rec, idx)
	if err != nil {
		return 0, false
	}
	return v, true
}

// dedupeBars keeps the last record seen for each trading day. Input is sorted.
func dedupeBars(bars []models.Bar) []models.Bar {
	if len(bars) < 2 {
		return bars
	}
	out := bars[:1]
	for _, b := range bars[1:] {
		if b.Date.Equal(out[len(out)-1].Date) {
			out[len(out)-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
