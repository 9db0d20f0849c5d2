package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/pkg/password"
)

// Bootstrap identity for the default administrator. The password is
// configurable; username and email are fixed well-known values.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@system.local"
	DefaultAdminPassword = "admin123"
)

// Config selects the store. PostgresDSN wins when set; otherwise the store
// is a single SQLite file at SQLitePath.
type Config struct {
	PostgresDSN   string
	SQLitePath    string
	AdminPassword string
}

// Open connects to the configured store, migrates the schema, and ensures
// exactly one administrator account exists. Safe to call on every startup.
func Open(cfg Config, hasher password.Hasher) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.PostgresDSN != "" {
		dialector = postgres.Open(cfg.PostgresDSN)
	} else {
		path := cfg.SQLitePath
		if path == "" {
			path = "bookstore.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db, cfg.AdminPassword, hasher); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or evolves the schema and runs the admin bootstrap.
func Migrate(db *gorm.DB, adminPassword string, hasher password.Hasher) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.CategoryDiscount{},
		&models.Purchase{},
		&models.Review{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// The bootstrap runs in a transaction so two concurrent startups
	// cannot both observe "no admin" and insert twice.
	return db.Transaction(func(tx *gorm.DB) error {
		return ensureDefaultAdmin(tx, adminPassword, hasher)
	})
}

// ensureDefaultAdmin inserts the well-known admin account if no admin row
// exists. Idempotent: a present admin (any username) means no-op.
func ensureDefaultAdmin(tx *gorm.DB, adminPassword string, hasher password.Hasher) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}
	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:           uuid.New().String(),
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	log.Printf("Default admin created - Username: %s", DefaultAdminUsername)
	return nil
}
