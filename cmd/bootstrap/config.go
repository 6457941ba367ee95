package bootstrap

import (
	"time"

	"tablebook/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.RestaurantConfig {
			return cfg.Restaurant
		},
		func(cfg config.Config) config.RedisConfig {
			return cfg.Redis
		},
		func(cfg config.Config) (*time.Location, error) {
			return cfg.Restaurant.Location()
		},
	),
)
