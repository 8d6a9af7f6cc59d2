package database

import (
	"fmt"

	"github.com/davidkuria/brewpos-api/internal/config"
	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

type seedItem struct {
	name  string
	price int64 // rupees; stored as paise
}

var defaultMenu = map[string][]seedItem{
	"Tea": {
		{"Small Tea", 10}, {"Normal Tea", 20}, {"Masala Tea", 25},
		{"Ginger Tea", 25}, {"Elaichi Tea", 25}, {"Green Tea", 30},
		{"Black Tea", 20}, {"Lemon Tea", 20}, {"Lemon Iced Tea (300 ML)", 60},
	},
	"Coffee": {
		{"Milk Coffee", 40}, {"Cappuccino", 60}, {"Americano", 50},
		{"Iced Americano", 70}, {"Cold Coffee", 70},
	},
	"Sandwich": {
		{"Veg Sandwich", 60}, {"Cheese Corn Sandwich", 85},
		{"Paneer Sandwich", 100}, {"Double Jumbo Sandwich", 120},
	},
	"Toast": {
		{"Butter Toast", 40}, {"Peri Peri Toast", 50},
		{"Jam Toast", 40}, {"Malai Toast", 50},
	},
}

// SeedDefaultData seeds the starter menu and, when configured, the
// admin account. Idempotent: existing rows are left alone.
func SeedDefaultData(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for category, items := range defaultMenu {
			for _, it := range items {
				item := entity.MenuItem{
					Name:     it.name,
					Category: category,
					Price:    it.price * 100,
				}
				if err := db.Create(&item).Error; err != nil {
					log.WithError(err).Warnf("failed to seed menu item %s", it.name)
				}
			}
		}
		log.Info("Seeded default menu")
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.WithError(err).Warn("failed to hash admin password")
				return nil
			}
			if adminName == "" {
				adminName = "Admin"
			}
			adminUser := entity.User{
				ID:       uuid.New(),
				Name:     adminName,
				Email:    adminEmail,
				Password: string(hashed),
				Role:     enum.UserRoleAdmin,
			}
			if err := db.Create(&adminUser).Error; err != nil {
				log.WithError(err).Warn("failed to create admin user")
			} else {
				log.Infof("Admin user created: %s", adminEmail)
			}
		}
	}

	return nil
}
