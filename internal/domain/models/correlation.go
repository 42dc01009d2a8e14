package models

import "time"

// AlignedDaily is one trading day's paired observation: mean news sentiment
// for the day and the next trading day's return. Created per correlation run,
// discarded after summary statistics.
type AlignedDaily struct {
	Symbol        string
	Date          time.Time
	AvgSentiment  float64
	NewsCount     int
	NextDayReturn float64 // percent
}

// CorrelationResult is the terminal per-symbol output.
type CorrelationResult struct {
	Symbol       string
	Correlation  float64
	PValue       float64
	Observations int
	Undefined    bool // zero variance or too few observations
}
