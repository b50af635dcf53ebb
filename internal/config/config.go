package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the runtime settings of the service. It is built once at
// startup and handed to whoever needs it.
type Config struct {
	Port        string
	DBDriver    string
	DBPath      string
	PostgresURL string
	// APIKey is the shared secret required by the report-closed route.
	APIKey string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", DriverSQLite),
		DBPath:      getEnv("DB_PATH", "cafes.db"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		APIKey:      os.Getenv("API_KEY_TOP_SECRET"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
