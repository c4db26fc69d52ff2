package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
)

// InitPostgresql opens the connection pool. TranslateError is enabled so
// unique-constraint violations surface as gorm.ErrDuplicatedKey; the
// repositories rely on that for join/follow conflict detection.
func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Organization{},
		&db_models.OrganizationMember{},
		&db_models.Event{},
		&db_models.Prayer{},
		&db_models.PrayerFollower{},
		&db_models.PrayerUpdate{},
		&db_models.DailyContent{},
	)
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
