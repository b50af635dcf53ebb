package config_fx

import (
	"go.uber.org/fx"

	"cafeapi/internal/config"
)

var Module = fx.Provide(config.Load)
