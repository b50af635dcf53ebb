package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"cafeapi/internal/config"
	"cafeapi/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg config.Config) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db)
			return nil
		},
	})

	return db, nil
}
