package indicators

import (
	"math"
	"time"

	"NewsPulse/internal/domain/models"
)

// Every function returns a slice the same length as its input so indicator
// columns line up 1:1 with bars. Positions without enough history hold NaN.

// SMA computes a simple moving average over the given period.
func SMA(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA computes an exponential moving average seeded with the SMA of the
// first window.
func EMA(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	seed := 0.0
	for _, c := range closes[:period] {
		seed += c
	}
	seed /= float64(period)
	out[period-1] = seed
	alpha := 2.0 / (float64(period) + 1.0)
	prev := seed
	for i := period; i < len(closes); i++ {
		prev = alpha*closes[i] + (1-alpha)*prev
		out[i] = prev
	}
	return out
}

// RSI computes the relative strength index with Wilder smoothing.
// Output values lie in [0, 100].
func RSI(closes []float64, period int) []float64 {
	out := nanSlice(len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}
	avgGain := 0.0
	avgLoss := 0.0
	for i := 1; i <= period; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			avgGain += d
		} else {
			avgLoss -= d
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)
	for i := period + 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if d > 0 {
			gain = d
		} else {
			loss = -d
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACD computes the MACD line, signal line and histogram for the given
// fast/slow/signal periods.
func MACD(closes []float64, fast, slow, signal int) (macd, signalLine, hist []float64) {
	n := len(closes)
	macd = nanSlice(n)
	signalLine = nanSlice(n)
	hist = nanSlice(n)
	if fast <= 0 || slow <= fast || signal <= 0 || n < slow {
		return macd, signalLine, hist
	}
	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)
	for i := slow - 1; i < n; i++ {
		macd[i] = emaFast[i] - emaSlow[i]
	}
	// Signal line is an EMA over the defined part of the MACD line.
	sig := EMA(macd[slow-1:], signal)
	for i, v := range sig {
		signalLine[slow-1+i] = v
	}
	for i := 0; i < n; i++ {
		if !math.IsNaN(macd[i]) && !math.IsNaN(signalLine[i]) {
			hist[i] = macd[i] - signalLine[i]
		}
	}
	return macd, signalLine, hist
}

// PctChange computes simple percent returns; the first position is NaN.
func PctChange(closes []float64) []float64 {
	out := nanSlice(len(closes))
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			continue
		}
		out[i] = (closes[i] - prev) / prev * 100
	}
	return out
}

// LogReturns computes log returns r_t = ln(C_t / C_{t-1}).
// It returns a slice of length len(closes)-1, or nil if insufficient data.
func LogReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		cur := closes[i]
		if prev <= 0 || cur <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, math.Log(cur/prev))
	}
	return out
}

// RealizedVolatility computes annualized realized volatility over the latest
// rolling window using the provided number of periods per year.
func RealizedVolatility(logReturns []float64, window int, periodsPerYear float64) float64 {
	if window <= 1 || len(logReturns) < window {
		return 0
	}
	sum := 0.0
	sum2 := 0.0
	for i := len(logReturns) - window; i < len(logReturns); i++ {
		r := logReturns[i]
		sum += r
		sum2 += r * r
	}
	n := float64(window)
	mean := sum / n
	variance := (sum2 - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	// annualize
	return math.Sqrt(variance * periodsPerYear)
}

// Config carries the indicator periods.
type Config struct {
	SMAPeriod        int
	EMAPeriod        int
	RSIPeriod        int
	MACDFast         int
	MACDSlow         int
	MACDSignal       int
	VolatilityWindow int
}

// Compute derives the full indicator set for one symbol's bar series.
func Compute(symbol string, bars []models.Bar, cfg Config) *models.IndicatorSeries {
	closes := make([]float64, len(bars))
	dates := make([]time.Time, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
		dates[i] = b.Date
	}
	macd, signalLine, hist := MACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	return &models.IndicatorSeries{
		Symbol:      symbol,
		Dates:       dates,
		Close:       closes,
		SMA:         SMA(closes, cfg.SMAPeriod),
		EMA:         EMA(closes, cfg.EMAPeriod),
		RSI:         RSI(closes, cfg.RSIPeriod),
		MACD:        macd,
		MACDSignal:  signalLine,
		MACDHist:    hist,
		DailyReturn: PctChange(closes),
	}
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
