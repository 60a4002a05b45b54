package database

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joefazee/qrmenu/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	// registers the postgres:// scheme and the file:// source with migrate
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

type Config struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME"`
	UseSSL   bool   `env:"DB_SSL_MODE"`
	LogQuery bool   `env:"DB_LOG_QUERY"`

	AutoMigrate    bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`
	MigrationsPath string `env:"DB_MIGRATIONS_PATH" env-default:"migrations"`
}

func (c *Config) Validate() error {
	if c.Host == "" ||
		c.Password == "" || c.Database == "" || c.User == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}
	return nil
}

// URL returns the connection string in postgres:// form, which both gorm and
// migrate accept.
func (c *Config) URL() string {
	sslMode := "disable"
	if c.UseSSL {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &gorm.Config{}
	if !c.LogQuery {
		cfg.Logger = gLogger.Discard
	}

	db, err := gorm.Open(postgres.Open(c.URL()), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if c.AutoMigrate {
		if err := Migrate(c.MigrationsPath, c.URL()); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate applies every pending migration found in dir.
func Migrate(dir, dsn string) error {
	if dir == "" {
		return errors.New("migrations path not set")
	}
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
