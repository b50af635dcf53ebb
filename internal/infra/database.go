package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cafeapi/internal/config"
	"cafeapi/internal/models/db_models"
)

// OpenDatabase connects to the configured store and creates the cafes table
// if it does not exist yet.
func OpenDatabase(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&db_models.Cafe{}); err != nil {
		return nil, fmt.Errorf("creating cafes table: %w", err)
	}

	return db, nil
}

// CloseDatabase releases the pool behind db, logging instead of failing.
func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}
