package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"indicator_semantics/internal/modules/config"
	"indicator_semantics/internal/modules/semantics"
	"indicator_semantics/internal/modules/semantics/service"
	"indicator_semantics/pkg/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// deps то, что команды получают из fx-графа.
type deps struct {
	cfg *config.Config
	reg *service.Registry
	log *zap.Logger
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger.SetServiceName(cfg.Service.Name)
	return logger.New(cfg.Log.Level, cfg.Log.Encoding)
}

// withDeps поднимает граф config -> logger -> registry и вызывает fn.
// Lifecycle-хуков нет, поэтому Start/Stop не нужны.
func withDeps(configPath string, fn func(d deps) error) error {
	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Supply(config.Path(configPath)),
		config.Module(),
		fx.Provide(newLogger),
		semantics.Module(),
		fx.Invoke(func(cfg *config.Config, reg *service.Registry, log *zap.Logger) {
			d = deps{cfg: cfg, reg: reg, log: log}
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}
	defer func() { _ = d.log.Sync() }()
	return fn(d)
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "semantics",
		Short: "Indicator expression schema for the bot rule-builder",
		Long: `semantics answers which comparison expressions are legal for each indicator
(RSI, EMA, BB, MACD, ADX, DI, VWAP): valid subjects, the targets each subject
may be compared with, and the operators allowed for every subject/target pair.

Subjects:  price, price:open, component:macd, derived:percent-b
Targets:   component:signal, value, zero`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format (text, yaml, json); default from config")

	cmd.AddCommand(
		indicatorsCmd(&configPath, &format),
		subjectsCmd(&configPath, &format),
		targetsCmd(&configPath, &format),
		operatorsCmd(&configPath, &format),
		exportCmd(&configPath, &format),
		checkCmd(&configPath),
	)
	return cmd
}

func outputFormat(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Output.Format
}
