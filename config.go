package itemservice

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/itemservice/pkg/config"
	"github.com/dmitrymomot/itemservice/pkg/logger"
	"github.com/dmitrymomot/itemservice/pkg/msgcodes"
	"github.com/dmitrymomot/itemservice/svc/item"
)

// Config is the environment configuration of a Service.
type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"itemservice"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	// TotalPriceFloor is the smallest accepted price × quantity.
	TotalPriceFloor int64 `env:"ITEM_TOTAL_PRICE_FLOOR" envDefault:"10000"`
	// TotalPriceRule, when set, replaces the floor check with an expression
	// over price and quantity.
	TotalPriceRule string `env:"ITEM_TOTAL_PRICE_RULE"`

	// MessagesFile is a YAML or JSON table merged over the built-in messages.
	MessagesFile string `env:"ITEM_MESSAGES_FILE"`
	// MessageCodePrefix and MessageCodeFormat ("prefix" or "postfix")
	// configure generated message codes.
	MessageCodePrefix string `env:"ITEM_MESSAGE_CODE_PREFIX"`
	MessageCodeFormat string `env:"ITEM_MESSAGE_CODE_FORMAT" envDefault:"prefix"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		AppName:           "itemservice",
		Env:               logger.EnvDevelopment,
		TotalPriceFloor:   item.DefaultTotalPriceFloor,
		MessageCodeFormat: "prefix",
	}
}

// LoadConfig reads Config from the environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env parser cannot.
func (c Config) Validate() error {
	if c.TotalPriceFloor <= 0 {
		return fmt.Errorf("%w: ITEM_TOTAL_PRICE_FLOOR must be positive, got %d", ErrInvalidConfig, c.TotalPriceFloor)
	}
	if c.LogLevel != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err)
		}
	}
	switch logger.Format(strings.ToLower(c.LogFormat)) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := c.codeFormat(); err != nil {
		return err
	}
	return nil
}

func (c Config) codeFormat() (msgcodes.Format, error) {
	switch strings.ToLower(c.MessageCodeFormat) {
	case "", "prefix":
		return msgcodes.FormatPrefix, nil
	case "postfix":
		return msgcodes.FormatPostfix, nil
	default:
		return 0, fmt.Errorf("%w: ITEM_MESSAGE_CODE_FORMAT %q", ErrInvalidConfig, c.MessageCodeFormat)
	}
}

func (c Config) resolver() (*msgcodes.Resolver, error) {
	format, err := c.codeFormat()
	if err != nil {
		return nil, err
	}
	return msgcodes.New(msgcodes.WithPrefix(c.MessageCodePrefix), msgcodes.WithFormat(format)), nil
}
