package repl

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/quaternaut/calc"
)

// Config controls the interactive session.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string `toml:"prompt"`
	// Digits is the number of significant digits in displayed results.
	Digits int `toml:"digits"`
	// HistorySize is the capacity of the history ring.
	HistorySize int `toml:"history_size"`
	// MaxDepth is the expression nesting limit handed to the evaluator.
	MaxDepth int `toml:"max_depth"`
	// ConventionalNegation makes exponentiation bind tighter than a leading
	// unary minus, so -2^2 displays -4.
	ConventionalNegation bool `toml:"conventional_negation"`
}

// DefaultConfig returns the stock configuration: a "> " prompt, 10
// significant digits, 10 history entries, and the evaluator's default depth
// limit.
func DefaultConfig() Config {
	return Config{
		Prompt:      "> ",
		Digits:      10,
		HistorySize: 10,
		MaxDepth:    calc.DefaultMaxDepth,
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path or a
// missing file is not an error and yields DefaultConfig. Out-of-range values
// fall back to their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	if cfg.Digits < 1 || cfg.Digits > 17 {
		cfg.Digits = 10
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = 10
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = calc.DefaultMaxDepth
	}
	return cfg, nil
}
