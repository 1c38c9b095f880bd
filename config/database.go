package config

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"tipapi/pkg/embeddeddb"
	"tipapi/pkg/logger"
)

// DB is the global GORM database instance used throughout the application.
var DB *gorm.DB

var embedded *embeddeddb.Server

// ConnectDB opens the store selected by Cfg.DBDriver and stores the handle in DB.
func ConnectDB() error {
	dialector, err := dialectorFor(Cfg)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		CloseDB()
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	if Cfg.DBDriver == DriverSQLite {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(Cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(Cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(Cfg.DBConnMaxLifetime)
	}

	logger.Infof("GORM connected successfully using driver %s", Cfg.DBDriver)
	DB = db
	return nil
}

// GormConfig returns the GORM settings for Cfg.DBDriver.
func GormConfig() *gorm.Config {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.NewGormLogger(logger.Default(), Cfg.DBSlowThreshold),
	}
	if Cfg.DBDriver == DriverEmbedded {
		// go-mysql-server rejects the review_cycle_group_idis foreign key.
		// The repository removes IDI rows itself on delete.
		cfg.DisableForeignKeyConstraintWhenMigrating = true
	}
	return cfg
}

// CloseDB releases the connection pool and stops the embedded server, if any.
func CloseDB() {
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warnf("Failed to close database: %v", err)
			}
		}
		DB = nil
	}
	if embedded != nil {
		embedded.Close()
		embedded = nil
	}
}

func dialectorFor(c AppConfig) (gorm.Dialector, error) {
	switch c.DBDriver {
	case DriverMySQL:
		logger.Infof("Connecting to database %s@%s:%d/%s", c.DBUser, c.DBHost, c.DBPort, c.DBName)
		return mysql.Open(MySQLDSN(c)), nil
	case DriverSQLite:
		logger.Infof("Opening sqlite database %s", c.SQLitePath)
		return sqlite.Open(c.SQLitePath), nil
	case DriverEmbedded:
		srv, err := embeddeddb.Start(context.Background(), c.DBName)
		if err != nil {
			return nil, fmt.Errorf("failed to start embedded database: %w", err)
		}
		embedded = srv
		return mysql.Open(srv.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// MySQLDSN builds the go-sql-driver DSN for c.
func MySQLDSN(c AppConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
