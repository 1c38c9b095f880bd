package embeddeddb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestServerAcceptsMySQLClients(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a TCP server")
	}

	srv, err := Start(context.Background(), "tip_test")
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	assert.Positive(t, srv.Port())
	assert.Contains(t, srv.DSN(), "/tip_test?")

	db, err := gorm.Open(mysql.Open(srv.DSN()), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestFreePort(t *testing.T) {
	port, err := freePort()
	require.NoError(t, err)
	assert.Greater(t, port, 0)
}
