package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

// InitPostgresql opens the archive database when POSTGRES_URL is set. The
// database is optional: without it the service still generates itineraries,
// only the archive endpoints are unavailable.
func InitPostgresql() (*gorm.DB, error) {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Println("POSTGRES_URL not set, itinerary archive disabled")
		return nil, nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(&db_models.ItineraryRecord{}); err != nil {
		log.Printf("Error migrating itinerary archive schema: %v", err)
		return nil, err
	}

	return db, nil
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
