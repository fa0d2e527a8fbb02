package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file. They are also
// passed to extensions.
const (
	EnvLedger       = "HLD_LEDGER"
	EnvQuotesFile   = "HLD_QUOTES_FILE"
	EnvQuotesPath   = "HLD_QUOTES_PATH"
	EnvExchangeRate = "HLD_EXCHANGE_RATE"
	EnvRateFile     = "HLD_RATE_FILE"
	EnvRatePath     = "HLD_RATE_PATH"
	EnvFinance      = "HLD_FINANCE"
	EnvCurrency     = "HLD_CURRENCY"
	EnvLogLevel     = "HLD_LOG_LEVEL"
	EnvTestingNow   = "HLD_TESTING_NOW"
)

// Source locates a value in a JSON document: a file and a jsonpath
// expression.
type Source struct {
	File string `yaml:"file,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Config is the application configuration.
type Config struct {
	Ledger       string  `yaml:"ledger,omitempty"`
	Quotes       Source  `yaml:"quotes,omitempty"`
	ExchangeRate float64 `yaml:"exchangeRate,omitempty"` // 1 unit of Currency in the other currency
	Rate         Source  `yaml:"rate,omitempty"`         // where to read the exchange rate, overrides ExchangeRate
	Finance      string  `yaml:"finance,omitempty"`
	Currency     string  `yaml:"currency,omitempty"`
	LogLevel     string  `yaml:"logLevel,omitempty"`
}

// config is the configuration in use, set up by Setup.
var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		Ledger:   "transactions.jsonl",
		Quotes:   Source{Path: "$"},
		Rate:     Source{Path: "$"},
		Currency: "EUR",
		LogLevel: "warn",
	}
}

// LoadConfig reads the configuration file, if it exists, on top of the
// defaults, then applies the environment overrides.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config %q: %w", path, err)
		}
	}

	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Ledger, EnvLedger)
	set(&cfg.Quotes.File, EnvQuotesFile)
	set(&cfg.Quotes.Path, EnvQuotesPath)
	set(&cfg.Rate.File, EnvRateFile)
	set(&cfg.Rate.Path, EnvRatePath)
	set(&cfg.Finance, EnvFinance)
	set(&cfg.Currency, EnvCurrency)
	set(&cfg.LogLevel, EnvLogLevel)
	if v := getenv(EnvExchangeRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvExchangeRate, v, err)
		}
		cfg.ExchangeRate = rate
	}
	return cfg, nil
}

// environ returns the configuration as environment variables.
func (c Config) environ() []string {
	return []string{
		EnvLedger + "=" + c.Ledger,
		EnvQuotesFile + "=" + c.Quotes.File,
		EnvQuotesPath + "=" + c.Quotes.Path,
		EnvExchangeRate + "=" + strconv.FormatFloat(c.ExchangeRate, 'f', -1, 64),
		EnvRateFile + "=" + c.Rate.File,
		EnvRatePath + "=" + c.Rate.Path,
		EnvFinance + "=" + c.Finance,
		EnvCurrency + "=" + c.Currency,
		EnvLogLevel + "=" + c.LogLevel,
	}
}

// Setup loads the .env file and the configuration, applies the global flags
// and configures the logger. The returned context carries the logger.
func Setup(ctx context.Context) (context.Context, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ctx, fmt.Errorf("cannot load .env: %w", err)
	}

	cfg, err := LoadConfig(*configFile, os.Getenv)
	if err != nil {
		return ctx, err
	}
	// flags have the last word.
	for _, f := range []struct{ dst, flag *string }{
		{&cfg.Ledger, ledgerFile},
		{&cfg.Quotes.File, quotesFile},
		{&cfg.Finance, financeFile},
		{&cfg.Currency, currency},
	} {
		if *f.flag != "" {
			*f.dst = *f.flag
		}
	}
	config = cfg

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if *Verbose {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
	logger.Debug().Str("ledger", cfg.Ledger).Str("quotes", cfg.Quotes.File).Str("finance", cfg.Finance).Msg("configuration loaded")
	return logger.WithContext(ctx), nil
}
