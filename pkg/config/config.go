package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Logging     struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout" validate:"required"`
	} `yaml:"logging"`
	Data struct {
		NewsPath string `yaml:"news_path" validate:"required"`
		StockDir string `yaml:"stock_dir" validate:"required"`
	} `yaml:"data"`
	Symbols    []string `yaml:"symbols" validate:"min=1,dive,required"`
	Indicators struct {
		SMAPeriod        int  `yaml:"sma_period" default:"20" validate:"gt=0"`
		EMAPeriod        int  `yaml:"ema_period" default:"20" validate:"gt=0"`
		RSIPeriod        int  `yaml:"rsi_period" default:"14" validate:"gt=0"`
		MACDFast         int  `yaml:"macd_fast" default:"12" validate:"gt=0"`
		MACDSlow         int  `yaml:"macd_slow" default:"26" validate:"gtfield=MACDFast"`
		MACDSignal       int  `yaml:"macd_signal" default:"9" validate:"gt=0"`
		VolatilityWindow int  `yaml:"volatility_window" default:"21" validate:"gt=1"`
		Export           bool `yaml:"export"`
	} `yaml:"indicators"`
	Analysis struct {
		MinObservations int    `yaml:"min_observations" default:"2" validate:"gte=2"`
		OutputDir       string `yaml:"output_dir" default:"results" validate:"required"`
	} `yaml:"analysis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Fill unset fields with defaults before validating
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("NEWS_PATH"); v != "" {
		c.Data.NewsPath = v
	}
	if v := os.Getenv("STOCK_DIR"); v != "" {
		c.Data.StockDir = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.Analysis.OutputDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("field %s failed rule '%s'", e.Namespace(), e.Tag())
		}
		return err
	}
	for _, s := range c.Symbols {
		if s != strings.ToUpper(s) {
			return fmt.Errorf("symbols must be upper-case, got '%s'", s)
		}
	}
	return nil
}
