package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"darkshield/internal/config"
	"darkshield/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		// Unique-index violations surface as gorm.ErrDuplicatedKey so the
		// repositories can tell a duplicate upload from any other failure.
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return connectionPool
}

// Migrate creates the feedback id sequence before the tables referencing it.
// Feedback ids start at 10101; file ids use the table's own serial from 1.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS feedback_sequence START WITH 10101 INCREMENT BY 1").Error; err != nil {
		return err
	}
	return db.AutoMigrate(&db_models.Message{}, &db_models.ExtensionFile{})
}

func ClosePostgresql(db *gorm.DB) {
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
