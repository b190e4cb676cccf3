package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Accounts
	BranchCode     string `env:"BRANCH_CODE"     envDefault:"0001"`
	WithdrawalCap  string `env:"WITHDRAWAL_CAP"  envDefault:"500"`
	MaxWithdrawals int    `env:"MAX_WITHDRAWALS" envDefault:"3"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if _, err := decimal.NewFromString(cfg.WithdrawalCap); err != nil {
		return nil, fmt.Errorf("invalid WITHDRAWAL_CAP %q: %w", cfg.WithdrawalCap, err)
	}

	return cfg, nil
}

// WithdrawalCapDecimal returns the per-operation withdrawal cap as a
// decimal. Load has already validated the string.
func (c *Config) WithdrawalCapDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(c.WithdrawalCap)
	return d
}
