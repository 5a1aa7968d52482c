package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"darkshield/internal/config"
	"darkshield/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
