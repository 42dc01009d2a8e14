package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"NewsPulse/internal/domain/models"
	domrepo "NewsPulse/internal/domain/repository"
	"NewsPulse/pkg/logger"
	"NewsPulse/pkg/util"
)

// CSVNewsSource reads raw news records from a single CSV file with
// date, headline, publisher and stock columns.
type CSVNewsSource struct {
	path string
	log  *logger.Logger
}

func NewCSVNewsSource(path string, log *logger.Logger) domrepo.NewsSource {
	return &CSVNewsSource{path: path, log: log}
}

func (s *CSVNewsSource) Load(ctx context.Context) ([]models.NewsItem, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open news file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read news header: %w", err)
	}
	cols := indexColumns(header)
	dateIdx, ok := pickColumn(cols, "date", "time", "timestamp")
	if !ok {
		return nil, fmt.Errorf("news file %s: no date column", s.path)
	}
	headIdx, ok := pickColumn(cols, "headline", "title")
	if !ok {
		return nil, fmt.Errorf("news file %s: no headline column", s.path)
	}
	symIdx, ok := pickColumn(cols, "stock", "symbol", "ticker")
	if !ok {
		return nil, fmt.Errorf("news file %s: no stock column", s.path)
	}
	pubIdx, _ := pickColumn(cols, "publisher", "source")

	var items []models.NewsItem
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
			s.log.Warn("skipping malformed news row",
				logger.String("file", s.path), logger.Int("line", line), logger.Error(err))
			continue
		}
		maxIdx := dateIdx
		if headIdx > maxIdx {
			maxIdx = headIdx
		}
		if symIdx > maxIdx {
			maxIdx = symIdx
		}
		if len(rec) <= maxIdx {
			skipped++
			s.log.Warn("skipping short news row",
				logger.String("file", s.path), logger.Int("line", line), logger.Int("fields", len(rec)))
			continue
		}
		ts, ok := util.ParseTime(strings.TrimSpace(rec[dateIdx]))
		if !ok {
			skipped++
			s.log.Warn("skipping news row with bad timestamp",
				logger.String("file", s.path), logger.Int("line", line), logger.String("value", rec[dateIdx]))
			continue
		}
		headline := strings.TrimSpace(rec[headIdx])
		symbol := strings.ToUpper(strings.TrimSpace(rec[symIdx]))
		if headline == "" || symbol == "" {
			skipped++
			s.log.Warn("skipping news row with empty headline or symbol",
				logger.String("file", s.path), logger.Int("line", line))
			continue
		}
		item := models.NewsItem{
			Headline:  headline,
			Timestamp: ts,
			Symbol:    symbol,
		}
		if pubIdx >= 0 && pubIdx < len(rec) {
			item.Publisher = strings.TrimSpace(rec[pubIdx])
		}
		items = append(items, item)
	}

	s.log.Info("news loaded",
		logger.String("file", s.path),
		logger.Int("rows", len(items)),
		logger.Int("skipped", skipped))
	return items, nil
}

// indexColumns maps lower-cased header names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

// pickColumn returns the position of the first matching alias, or (-1, false).
func pickColumn(cols map[string]int, aliases ...string) (int, bool) {
	for _, a := range aliases {
		if i, ok := cols[a]; ok {
			return i, true
		}
	}
	return -1, false
}
