package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverEmbedded = "embedded"
)

// AppConfig holds application configuration loaded from environment variables and .env file.
type AppConfig struct {
	// Database config
	DBDriver          string
	DBHost            string
	DBPort            int
	DBUser            string
	DBPass            string
	DBName            string
	SQLitePath        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBSlowThreshold   time.Duration
	DBAutoMigrate     bool

	// Logging config
	LogLevel      string
	LogFile       string
	LogMaxSize    int // MB
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool

	// HTTP config
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
	SwaggerEnabled  bool

	// Pagination defaults
	DefaultPageSize int
	MaxPageSize     int
}

// Cfg is the global application configuration instance.
var Cfg AppConfig

// LoadConfig loads application configuration from .env file and environment variables.
func LoadConfig() error {
	err := godotenv.Load()
	if err != nil {
		// Use standard log here since logger is not initialized yet
		log.Printf("[WARN] .env file not found or cannot be loaded: %v", err)
	} else {
		log.Printf("[INFO] .env file loaded successfully")
	}

	Cfg = readEnv()

	log.Printf("[INFO] Config loaded - Driver: %s, DB: %s@%s:%d/%s, LogLevel: %s",
		Cfg.DBDriver, Cfg.DBUser, Cfg.DBHost, Cfg.DBPort, Cfg.DBName, Cfg.LogLevel)
	log.Printf("[INFO] HTTP config - Port: %s, Metrics: %t, Swagger: %t, PageSize: %d/%d",
		Cfg.Port, Cfg.MetricsEnabled, Cfg.SwaggerEnabled, Cfg.DefaultPageSize, Cfg.MaxPageSize)

	return nil
}

func readEnv() AppConfig {
	var c AppConfig

	c.DBDriver = strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	c.DBHost = getEnv("DB_HOST", "127.0.0.1")
	c.DBPort = getEnvInt("DB_PORT", 3306)
	c.DBUser = getEnv("DB_USER", "root")
	c.DBPass = getEnv("DB_PASS", "")
	c.DBName = getEnv("DB_NAME", "tip")
	c.SQLitePath = getEnv("SQLITE_PATH", "tip.db")
	c.DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 25)
	c.DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	c.DBConnMaxLifetime = time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second
	c.DBSlowThreshold = time.Duration(getEnvInt("DB_SLOW_THRESHOLD_MS", 200)) * time.Millisecond
	c.DBAutoMigrate = getEnvBool("DB_AUTO_MIGRATE", true)

	c.LogLevel = getEnv("LOG_LEVEL", "INFO")
	c.LogFile = os.Getenv("LOG_FILE")
	c.LogMaxSize = getEnvInt("LOG_MAX_SIZE", 10)
	c.LogMaxBackups = getEnvInt("LOG_MAX_BACKUPS", 3)
	c.LogMaxAge = getEnvInt("LOG_MAX_AGE", 28)
	c.LogCompress = getEnvBool("LOG_COMPRESS", true)

	c.Port = getEnv("PORT", "8081")
	c.GinMode = getEnv("GIN_MODE", "release")
	c.ShutdownTimeout = time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second
	c.MetricsEnabled = getEnvBool("METRICS_ENABLED", true)
	c.SwaggerEnabled = getEnvBool("SWAGGER_ENABLED", true)

	c.DefaultPageSize = getEnvInt("DEFAULT_PAGE_SIZE", 20)
	c.MaxPageSize = getEnvInt("MAX_PAGE_SIZE", 100)
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.MaxPageSize < c.DefaultPageSize {
		c.MaxPageSize = c.DefaultPageSize
	}

	return c
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
