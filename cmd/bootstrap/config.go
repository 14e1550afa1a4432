package bootstrap

import (
	"beautyspace/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.TopUpConfig { return cfg.TopUp },
	),
)
