package database

import (
	"fmt"
	"log"
	"os"

	"github.com/anirudh21-ch/elearn/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database and creates the schema. Postgres is used
// when DATABASE_URL is set, otherwise a local SQLite file so the server
// runs with no external services.
func Connect() (*gorm.DB, error) {
	dialector := dialectorFromEnv()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return db, nil
}

func dialectorFromEnv() gorm.Dialector {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return postgres.Open(databaseURL)
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "elearn.db"
	}
	return sqlite.Open(path)
}

// autoMigrate creates the tables. Safe to run on every startup.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Quiz{},
	)
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
