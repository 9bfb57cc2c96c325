package config

import (
	"errors"  // Validation errors
	"fmt"     // DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Session lifetime

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Defaults applied when the matching variable is unset
const (
	defaultAppPort       = "5555"
	defaultSQLitePath    = "recipes.db"
	defaultSessionTTL    = 24 * time.Hour
	defaultSessionCookie = "session"
	defaultLogLevel      = "info"
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBDriver      string        // Database driver: mysql or sqlite
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name
	SQLitePath    string        // SQLite database file
	RedisAddr     string        // Redis server address
	RedisPass     string        // Redis password
	RedisDB       int           // Redis database number
	SessionSecret string        // Key used to sign session cookies
	SessionTTL    time.Duration // Session lifetime in Redis and in the cookie
	SessionCookie string        // Session cookie name
	CookieSecure  bool          // Send the session cookie over HTTPS only
	LogLevel      string        // logrus level name
	IsProd        bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := time.ParseDuration(os.Getenv("SESSION_TTL"))
	if err != nil || ttl <= 0 {
		ttl = defaultSessionTTL // Fall back on missing or malformed value
	}
	return &Config{
		AppPort:       getenv("APP_PORT", defaultAppPort),             // Application port
		DBDriver:      getenv("DB_DRIVER", DriverSQLite),              // Database driver
		DBUser:        os.Getenv("DB_USER"),                           // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                       // Database password
		DBHost:        os.Getenv("DB_HOST"),                           // Database host
		DBPort:        os.Getenv("DB_PORT"),                           // Database port
		DBName:        os.Getenv("DB_NAME"),                           // Database name
		SQLitePath:    getenv("SQLITE_PATH", defaultSQLitePath),       // SQLite file
		RedisAddr:     os.Getenv("REDIS_ADDR"),                        // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                        // Redis password
		RedisDB:       redisDB,                                        // Redis database number
		SessionSecret: os.Getenv("SESSION_SECRET"),                    // Cookie signing key
		SessionTTL:    ttl,                                            // Session lifetime
		SessionCookie: getenv("SESSION_COOKIE", defaultSessionCookie), // Cookie name
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",           // HTTPS-only cookie
		LogLevel:      getenv("LOG_LEVEL", defaultLogLevel),           // Log level
		IsProd:        os.Getenv("IS_PROD") == "true",                 // Is production environment
	}
}

// getenv returns the variable or fallback when it is empty
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if c.IsProd && c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required in production")
	}
	return nil
}

// DSN returns the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverMySQL {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
	}
	return c.SQLitePath + "?_foreign_keys=on" // SQLite only enforces foreign keys when asked
}
