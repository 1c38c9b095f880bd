package testdb

import (
	"context"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tipapi/pkg/embeddeddb"
)

// OpenEmbedded starts an in-memory MySQL server and returns a GORM handle on it,
// configured the way config.ConnectDB configures DB_DRIVER=embedded.
// It skips under -short.
func OpenEmbedded(t testing.TB, migrate func(*gorm.DB) error) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("starts an embedded MySQL server")
	}

	srv, err := embeddeddb.Start(context.Background(), "tip_test")
	if err != nil {
		t.Fatalf("start embedded server: %v", err)
	}
	t.Cleanup(srv.Close)

	db, err := gorm.Open(mysql.Open(srv.DSN()), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open embedded mysql: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("embedded pool: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if migrate != nil {
		if err := migrate(db); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	return db
}
