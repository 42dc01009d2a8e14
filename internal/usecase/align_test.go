package usecase

import (
	"testing"
	"time"

	"NewsPulse/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekBars() []models.Bar {
	// Mon 2020-06-01 .. Fri 2020-06-05, then Mon 2020-06-08
	return []models.Bar{
		{Date: day(2020, 6, 1), Close: 100},
		{Date: day(2020, 6, 2), Close: 101},
		{Date: day(2020, 6, 3), Close: 102},
		{Date: day(2020, 6, 4), Close: 103},
		{Date: day(2020, 6, 5), Close: 104},
		{Date: day(2020, 6, 8), Close: 105},
	}
}

func TestAlignSameDay(t *testing.T) {
	days := TradingDays(weekBars())
	got, ok := AlignToTradingDay(time.Date(2020, 6, 3, 9, 15, 0, 0, time.UTC), days)
	if !ok {
		t.Fatalf("expected alignment")
	}
	if !got.Equal(day(2020, 6, 3)) {
		t.Fatalf("expected same day, got %v", got)
	}
}

func TestAlignWeekendToNextTradingDay(t *testing.T) {
	days := TradingDays(weekBars())
	got, ok := AlignToTradingDay(time.Date(2020, 6, 6, 12, 0, 0, 0, time.UTC), days)
	if !ok {
		t.Fatalf("expected alignment")
	}
	if !got.Equal(day(2020, 6, 8)) {
		t.Fatalf("expected Monday, got %v", got)
	}
}

func TestAlignBeforeFirstTradingDay(t *testing.T) {
	days := TradingDays(weekBars())
	got, ok := AlignToTradingDay(time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC), days)
	if !ok {
		t.Fatalf("expected alignment")
	}
	if !got.Equal(day(2020, 6, 1)) {
		t.Fatalf("expected first trading day, got %v", got)
	}
}

func TestAlignAfterLastTradingDayDrops(t *testing.T) {
	days := TradingDays(weekBars())
	_, ok := AlignToTradingDay(time.Date(2020, 6, 9, 0, 0, 0, 0, time.UTC), days)
	if ok {
		t.Fatalf("expected drop for timestamp past last trading day")
	}
}

func TestTradingDaysSortedUnique(t *testing.T) {
	bars := []models.Bar{
		{Date: day(2020, 6, 3)},
		{Date: day(2020, 6, 1)},
		{Date: day(2020, 6, 3)},
		{Date: day(2020, 6, 2)},
	}
	days := TradingDays(bars)
	if len(days) != 3 {
		t.Fatalf("expected 3 unique days, got %d", len(days))
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Fatalf("days not sorted: %v", days)
		}
	}
}
