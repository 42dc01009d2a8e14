package usecase

import (
	"sort"
	"time"

	"NewsPulse/internal/domain/models"
	"NewsPulse/pkg/util"
)

// TradingDays extracts the sorted unique trading days from a bar series.
func TradingDays(bars []models.Bar) []time.Time {
	days := make([]time.Time, 0, len(bars))
	for _, b := range bars {
		days = append(days, util.Day(b.Date))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	out := days[:0]
	for _, d := range days {
		if len(out) == 0 || !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}

// AlignToTradingDay maps a news timestamp to the first trading day on or
// after its calendar date: same-day when the news date itself is a trading
// day, otherwise the next trading day. Returns false when no trading day
// exists at or after the timestamp; such items are dropped from correlation
// input.
func AlignToTradingDay(ts time.Time, tradingDays []time.Time) (time.Time, bool) {
	day := util.Day(ts)
	i := sort.Search(len(tradingDays), func(i int) bool {
		return !tradingDays[i].Before(day)
	})
	if i == len(tradingDays) {
		return time.Time{}, false
	}
	return tradingDays[i], true
}
