package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimalConfig = `
data:
  news_path: data/news.csv
  stock_dir: data/stocks
symbols:
  - AAPL
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected default environment, got %s", cfg.Environment)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("expected logging defaults, got %+v", cfg.Logging)
	}
	if cfg.Indicators.SMAPeriod != 20 || cfg.Indicators.MACDSlow != 26 {
		t.Fatalf("expected indicator defaults, got %+v", cfg.Indicators)
	}
	if cfg.Analysis.MinObservations != 2 || cfg.Analysis.OutputDir != "results" {
		t.Fatalf("expected analysis defaults, got %+v", cfg.Analysis)
	}
}

func TestLoadMissingNewsPath(t *testing.T) {
	_, err := Load(writeConfig(t, `
data:
  stock_dir: data/stocks
symbols:
  - AAPL
`))
	if err == nil {
		t.Fatalf("expected validation error for missing news_path")
	}
}

func TestLoadEmptySymbols(t *testing.T) {
	_, err := Load(writeConfig(t, `
data:
  news_path: data/news.csv
  stock_dir: data/stocks
symbols: []
`))
	if err == nil {
		t.Fatalf("expected validation error for empty symbols")
	}
}

func TestLoadRejectsLowerCaseSymbols(t *testing.T) {
	_, err := Load(writeConfig(t, `
data:
  news_path: data/news.csv
  stock_dir: data/stocks
symbols:
  - aapl
`))
	if err == nil {
		t.Fatalf("expected validation error for lower-case symbol")
	}
}

func TestLoadRejectsMACDSlowNotGreaterThanFast(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
indicators:
  macd_fast: 26
  macd_slow: 12
`))
	if err == nil {
		t.Fatalf("expected validation error for macd_slow <= macd_fast")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("SYMBOLS", "MSFT,NVDA")
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	cfg, err := LoadWithEnv(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "MSFT" {
		t.Fatalf("expected env symbols, got %v", cfg.Symbols)
	}
	if cfg.Analysis.OutputDir != "/tmp/out" {
		t.Fatalf("expected env output dir, got %s", cfg.Analysis.OutputDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
