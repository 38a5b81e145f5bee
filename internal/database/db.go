package database

import (
	"log"

	"storseek-backend/internal/config"
	"storseek-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the Postgres connection and runs migrations. Unlike a classic
// backend this does NOT abort the process on failure: the service keeps
// running against the local cache store until the database comes back.
func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Client{},
		&models.Order{},
		&models.DeliveredOrder{},
		&models.Expense{},
		&models.Saving{},
		&models.Reminder{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	DB = db
	log.Println("تم الاتصال بقاعدة البيانات وتنفيذ الترحيلات")
	return nil
}
