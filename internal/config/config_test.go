package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/avance.db", cfg.SQLitePath)
	assert.Equal(t, "data/Basedatos.xlsx", cfg.WorkbookPath)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 1433, cfg.SQLServerPort)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SQLITE_PATH", "/tmp/other.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "/tmp/other.db", cfg.SQLitePath)
}

func TestSQLServerDSN(t *testing.T) {
	cfg := Config{
		SQLServerHost:     "db.internal",
		SQLServerPort:     1433,
		SQLServerDatabase: "db_gpc",
		SQLServerUser:     "app",
		SQLServerPassword: "p@ss/word",
	}

	dsn := cfg.SQLServerDSN()
	assert.Contains(t, dsn, "sqlserver://")
	assert.Contains(t, dsn, "db.internal:1433")
	assert.Contains(t, dsn, "database=db_gpc")
	// Credentials must be URL-escaped, not spliced in raw.
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestSQLServerDSNEmptyWithoutHost(t *testing.T) {
	assert.Empty(t, Config{SQLServerDatabase: "db_gpc"}.SQLServerDSN())
}
