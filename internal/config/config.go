package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, populated from the environment.
// Connection parameters for the relational backend live here rather than in
// code; leaving SQLSERVER_HOST empty skips that tier entirely.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	SecretKey string `env:"SECRET_KEY" envDefault:"change_me_in_production"`

	SQLServerHost     string `env:"SQLSERVER_HOST"`
	SQLServerPort     int    `env:"SQLSERVER_PORT" envDefault:"1433"`
	SQLServerDatabase string `env:"SQLSERVER_DATABASE" envDefault:"db_gpc"`
	SQLServerUser     string `env:"SQLSERVER_USER"`
	SQLServerPassword string `env:"SQLSERVER_PASSWORD"`
	SQLServerPoolSize int    `env:"SQLSERVER_POOL_SIZE" envDefault:"5"`

	SQLitePath   string `env:"SQLITE_PATH" envDefault:"data/avance.db"`
	WorkbookPath string `env:"WORKBOOK_PATH" envDefault:"data/Basedatos.xlsx"`

	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@avance.local"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		// Missing .env is fine; the environment may be set directly.
		_ = godotenv.Load(envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// SQLServerDSN renders the sqlserver connection string, or "" when the
// relational tier is not configured.
func (cfg Config) SQLServerDSN() string {
	if cfg.SQLServerHost == "" {
		return ""
	}

	dsn := url.URL{
		Scheme: "sqlserver",
		Host:   fmt.Sprintf("%s:%d", cfg.SQLServerHost, cfg.SQLServerPort),
	}
	if cfg.SQLServerUser != "" {
		dsn.User = url.UserPassword(cfg.SQLServerUser, cfg.SQLServerPassword)
	}
	query := url.Values{}
	query.Set("database", cfg.SQLServerDatabase)
	dsn.RawQuery = query.Encode()
	return dsn.String()
}
