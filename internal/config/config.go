package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// DBBackend selects the RecordStore implementation: postgres, sqlite or memory.
	DBBackend string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	SQLitePath string

	DBPoolSize       int
	DBIdleTimeout    time.Duration
	DBConnectTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "3001"),
		Env:              getEnv("ENV", "development"),
		DBBackend:        getEnv("DB_BACKEND", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "sales_db"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		SQLitePath:       getEnv("SQLITE_PATH", "sales.db"),
		DBPoolSize:       getEnvInt("DB_POOL_SIZE", 20),
		DBIdleTimeout:    getEnvDuration("DB_IDLE_TIMEOUT", 30*time.Second),
		DBConnectTimeout: getEnvDuration("DB_CONNECT_TIMEOUT", 2*time.Second),
	}

	return cfg
}

// PostgresDSN builds a keyword/value DSN for the GORM postgres driver.
// The connect timeout is enforced by the driver itself.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=%d",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
		int(c.DBConnectTimeout.Seconds()),
	)
}

// DatabaseURL builds a postgres:// URL, used by golang-migrate.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ invalid value for %s: %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
