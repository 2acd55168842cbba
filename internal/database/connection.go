// internal/database/connection.go
package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/elnet/electronics-network/internal/config"
	"github.com/elnet/electronics-network/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN() + "?_foreign_keys=on&_journal_mode=WAL")
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	// Connect to database
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	if cfg.Driver == config.DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established successfully")
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Manufacturer{},
		&models.RetailNetwork{},
		&models.IndividualEntrepreneur{},
		&models.Product{},
		&models.Transaction{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Listing order within an owner
		"CREATE INDEX IF NOT EXISTS idx_manufacturers_owner_created ON manufacturers(owner_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_retail_networks_owner_created ON retail_networks(owner_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_individual_entrepreneurs_owner_created ON individual_entrepreneurs(owner_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_products_owner_created ON products(owner_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_owner_created ON transactions(owner_id, created_at)",

		// Seller lookups for product supplier checks
		"CREATE INDEX IF NOT EXISTS idx_product_retailers_retail_network ON product_retailers(retail_network_id)",
		"CREATE INDEX IF NOT EXISTS idx_product_entrepreneurs_individual_entrepreneur ON product_entrepreneurs(individual_entrepreneur_id)",

		// Audit log
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_action ON audit_logs(user_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates the superuser named in the seed config if no
// superuser exists yet.
func SeedInitialData(db *gorm.DB, cfg config.SeedConfig) (*models.User, error) {
	logrus.Info("Seeding initial data...")

	var admin models.User
	err := db.Where("is_superuser = ?", true).First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up superuser: %w", err)
	}

	if cfg.AdminPassword == "" {
		return nil, errors.New("SEED_ADMIN_PASSWORD is required to create the superuser")
	}

	admin = models.User{
		Username:    cfg.AdminUsername,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to set admin password: %w", err)
	}

	if err := db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.WithField("username", admin.Username).Info("Default admin user created successfully")
	return &admin, nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
