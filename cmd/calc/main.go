// Command calc evaluates arithmetic expressions. Expressions given as
// arguments are evaluated one-shot; with no arguments it runs an interactive
// session on standard input.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quaternaut/calc"
	"github.com/quaternaut/calc/internal/repl"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:          "calc [expression ...]",
	Short:        "Double-precision expression calculator",
	Args:         cobra.ArbitraryArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ")"
	rootCmd.SetVersionTemplate("calc version {{.Version}}\n")

	rootCmd.Flags().String("config", "", "TOML config file (default ~/.calc.toml)")
	rootCmd.Flags().Int("digits", 0, "significant digits in displayed results (default 10)")
	rootCmd.Flags().Int("max-depth", 0, "expression nesting limit (default 512)")
	rootCmd.Flags().Bool("conventional", false, "make ^ bind tighter than a leading unary minus")
	rootCmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	lvl, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".calc.toml")
		}
	}
	cfg, err := repl.LoadConfig(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("ignoring unreadable config")
	}
	if v, _ := cmd.Flags().GetInt("digits"); v > 0 {
		cfg.Digits = v
	}
	if v, _ := cmd.Flags().GetInt("max-depth"); v > 0 {
		cfg.MaxDepth = v
	}
	if v, _ := cmd.Flags().GetBool("conventional"); v {
		cfg.ConventionalNegation = true
	}

	if len(args) > 0 {
		opts := []calc.Option{calc.MaxDepth(cfg.MaxDepth)}
		if cfg.ConventionalNegation {
			opts = append(opts, calc.ConventionalNegation())
		}
		for _, expr := range args {
			v, err := calc.Evaluate(expr, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", expr, err)
			}
			fmt.Printf("%.*g\n", cfg.Digits, v)
		}
		return nil
	}

	logger.Debug().Str("version", version).Msg("starting interactive session")
	return repl.New(os.Stdin, os.Stdout, cfg).Run()
}
