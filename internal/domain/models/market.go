package models

import "time"

// Bar represents one OHLCV record for a trading day. Immutable once loaded.
type Bar struct {
	Date   time.Time // trading day, UTC midnight
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// IndicatorSeries carries derived per-bar indicator columns. Every slice has
// the same length as Dates; positions without enough history hold NaN.
type IndicatorSeries struct {
	Symbol      string
	Dates       []time.Time
	Close       []float64
	SMA         []float64
	EMA         []float64
	RSI         []float64
	MACD        []float64
	MACDSignal  []float64
	MACDHist    []float64
	DailyReturn []float64
}
