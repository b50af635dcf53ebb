package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("API_KEY_TOP_SECRET", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "cafes.db", cfg.DBPath)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("POSTGRES_URL", "postgres://cafe@localhost/cafes")
	t.Setenv("API_KEY_TOP_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://cafe@localhost/cafes", cfg.PostgresURL)
	assert.Equal(t, "s3cret", cfg.APIKey)
}
