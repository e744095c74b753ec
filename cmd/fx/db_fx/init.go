package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/infra"
	"wayfare/internal/repositories"
)

var Module = fx.Provide(
	infra.InitPostgresql,
	provideItineraryRepository,
)

func provideItineraryRepository(db *gorm.DB) repositories.ItineraryRepository {
	if db == nil {
		return repositories.NewDisabledItineraryRepository()
	}
	return repositories.NewItineraryRepository(db)
}
