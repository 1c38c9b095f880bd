package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"tipapi/config"
	"tipapi/models"
	"tipapi/pkg/logger"
)

// MigrateModels lists every persisted model in dependency order.
var MigrateModels = []interface{}{
	&models.ReviewCycleGroup{},
	&models.ReviewCycleGroupIdi{},
	&models.ReviewGroupCriteria{},
}

// Migrate creates or updates the schema for MigrateModels.
func Migrate(db *gorm.DB) error {
	logger.Infof("Starting schema migration for %d models...", len(MigrateModels))

	for _, m := range MigrateModels {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}

	logger.Infof("Schema migration completed successfully")
	return nil
}

// MigrateCreateOnly creates the tables of MigrateModels that do not exist yet and
// leaves existing tables untouched. It is used for the embedded engine, whose
// DDL support does not cover AutoMigrate's diff of an existing table.
func MigrateCreateOnly(db *gorm.DB) error {
	logger.Infof("Starting create-only schema migration for %d models...", len(MigrateModels))

	migrator := db.Migrator()
	for _, m := range MigrateModels {
		if migrator.HasTable(m) {
			logger.Debugf("Table for %T already exists, skipping", m)
			continue
		}
		if err := migrator.CreateTable(m); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", m, err)
		}
	}

	logger.Infof("Schema migration completed successfully")
	return nil
}

// MigrateForDriver runs MigrateCreateOnly for the embedded engine and Migrate otherwise.
func MigrateForDriver(db *gorm.DB, driver string) error {
	if driver == config.DriverEmbedded {
		return MigrateCreateOnly(db)
	}
	return Migrate(db)
}
