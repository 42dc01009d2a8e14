package usecase

import (
	"NewsPulse/internal/domain/models"
	"NewsPulse/pkg/util"
)

// AggregateDaily groups one symbol's scored news by aligned trading day and
// pairs each day's mean sentiment with the next trading day's return.
//
// The last bar has no next-day return, so news aligned to it yields no pair.
// News for other symbols is ignored; news past the last trading day is
// dropped. Returns the paired records in date order plus the dropped count.
func AggregateDaily(symbol string, news []models.ScoredNews, bars []models.Bar) ([]models.AlignedDaily, int) {
	if len(bars) == 0 {
		return nil, 0
	}

	days := TradingDays(bars)
	dayIndex := make(map[int64]int, len(days))
	for i, d := range days {
		dayIndex[d.Unix()] = i
	}

	sums := make([]float64, len(days))
	counts := make([]int, len(days))
	dropped := 0
	for _, item := range news {
		if item.Symbol != symbol {
			continue
		}
		day, ok := AlignToTradingDay(item.Timestamp, days)
		if !ok {
			dropped++
			continue
		}
		i := dayIndex[day.Unix()]
		sums[i] += item.Sentiment
		counts[i]++
	}

	// Next-day simple returns, in percent, indexed by trading day.
	nextReturn := make([]float64, len(days))
	hasNext := make([]bool, len(days))
	for i := 0; i+1 < len(bars); i++ {
		j, ok := dayIndex[util.Day(bars[i].Date).Unix()]
		if !ok || bars[i].Close == 0 {
			continue
		}
		nextReturn[j] = (bars[i+1].Close - bars[i].Close) / bars[i].Close * 100
		hasNext[j] = true
	}

	var out []models.AlignedDaily
	for i, d := range days {
		if counts[i] == 0 || !hasNext[i] {
			continue
		}
		out = append(out, models.AlignedDaily{
			Symbol:        symbol,
			Date:          d,
			AvgSentiment:  sums[i] / float64(counts[i]),
			NewsCount:     counts[i],
			NextDayReturn: nextReturn[i],
		})
	}
	return out, dropped
}
