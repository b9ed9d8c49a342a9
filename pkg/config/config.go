package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Sales        SalesConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		// Local-file mode: skips the postgres DSN assembly entirely.
		cfg.DB.Driver = "sqlite"
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "file:dealerdesk.db"
		}
		return &cfg, nil
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DEALERDESK_APP_ENV" required:"true"`
	Port         string `envconfig:"DEALERDESK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DEALERDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DEALERDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"DEALERDESK_DB_DSN"`
	Driver string `envconfig:"DEALERDESK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"DEALERDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"DEALERDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"DEALERDESK_DB_USER"`
	LegacyPassword string `envconfig:"DEALERDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"DEALERDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"DEALERDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DEALERDESK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DEALERDESK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DEALERDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"DEALERDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// SalesConfig controls sale write-path behavior.
type SalesConfig struct {
	// MarkVehicleSold flips vehicles.available to false inside the same
	// transaction as a sale insert. The legacy system never did this, so the
	// flag defaults to off.
	MarkVehicleSold bool `envconfig:"DEALERDESK_SALES_MARK_VEHICLE_SOLD" default:"false"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"DEALERDESK_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"DEALERDESK_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
