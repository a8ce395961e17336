package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	defaultSQLitePath = "data/pvs_ledger.db"
	maxMoneyScale     = 18
)

// Config holds application configuration.
type Config struct {
	DBDriver      string
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool
	MoneyScale    int32
	LogLevel      slog.Level
	RateLimit     string
	CORSOrigins   []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MONEY_SCALE", 2)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ORIGINS", "*")

	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:      strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations: v.GetBool("RUN_MIGRATIONS"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLitePath
			slog.Warn("DATABASE_URL not set, using local SQLite file", slog.String("path", cfg.DatabaseURL))
		}
	case DriverPostgres, "postgres":
		cfg.DBDriver = DriverPostgres
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when DB_DRIVER is %s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverSQLite, DriverPostgres)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, defaulting", slog.String("port", cfg.Port))
	}

	scale := v.GetInt("MONEY_SCALE")
	if scale < 0 || scale > maxMoneyScale {
		return nil, fmt.Errorf("MONEY_SCALE %d outside [0, %d]", scale, maxMoneyScale)
	}
	cfg.MoneyScale = int32(scale)

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}
