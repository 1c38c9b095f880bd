package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PORT", "PORT", "DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE", "LOG_FILE", "DB_AUTO_MIGRATE"} {
		t.Setenv(key, "")
	}

	c := readEnv()

	assert.Equal(t, DriverMySQL, c.DBDriver)
	assert.Equal(t, 3306, c.DBPort)
	assert.Equal(t, "8081", c.Port)
	assert.Equal(t, 20, c.DefaultPageSize)
	assert.Equal(t, 100, c.MaxPageSize)
	assert.Empty(t, c.LogFile)
	assert.True(t, c.DBAutoMigrate)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestReadEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/tip.db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")
	t.Setenv("MAX_PAGE_SIZE", "10")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")

	c := readEnv()

	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, "/tmp/tip.db", c.SQLitePath)
	assert.Equal(t, 3307, c.DBPort)
	assert.False(t, c.MetricsEnabled)
	assert.Equal(t, 50, c.DefaultPageSize)
	// max is never below the default
	assert.Equal(t, 50, c.MaxPageSize)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
}

func TestReadEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("LOG_COMPRESS", "maybe")

	c := readEnv()

	assert.Equal(t, 3306, c.DBPort)
	assert.True(t, c.LogCompress)
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(AppConfig{DBUser: "tip", DBPass: "secret", DBHost: "db", DBPort: 3306, DBName: "tip"})
	assert.Equal(t, "tip:secret@tcp(db:3306)/tip?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}

func TestDialectorForRejectsUnknownDriver(t *testing.T) {
	_, err := dialectorFor(AppConfig{DBDriver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestGormConfigDisablesForeignKeysForEmbedded(t *testing.T) {
	saved := Cfg
	t.Cleanup(func() { Cfg = saved })

	Cfg = AppConfig{DBDriver: DriverEmbedded}
	cfg := GormConfig()
	assert.True(t, cfg.TranslateError)
	assert.True(t, cfg.DisableForeignKeyConstraintWhenMigrating)

	Cfg = AppConfig{DBDriver: DriverMySQL}
	assert.False(t, GormConfig().DisableForeignKeyConstraintWhenMigrating)
}
