package config

import "go.uber.org/fx"

// Module регистрирует NewConfig как fx-провайдер. Path подаётся снаружи через fx.Supply.
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(
			NewConfig,
		),
	)
}
