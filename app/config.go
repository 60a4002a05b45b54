package app

import (
	"context"
	"os"
	"time"

	"github.com/joefazee/qrmenu/app/database"
	"github.com/joefazee/qrmenu/internal/nexus"
	"github.com/joefazee/qrmenu/internal/tree"
)

// ConfigFileEnv names an optional config file read in place of .env.
const ConfigFileEnv = "APP_CONFIG_FILE"

type Config struct {
	DB    database.Config
	Redis RedisConfig
	Store StoreConfig
	Blob  BlobConfig
	Admin AdminConfig

	AppHost     string   `env:"APP_HOST" env-default:"localhost"`
	AppPort     string   `env:"APP_PORT" env-default:"8080" validate:"numeric"`
	PublicURL   string   `env:"APP_PUBLIC_URL" validate:"omitempty,url"`
	Env         string   `env:"APP_ENV" env-default:"development" validate:"oneof=development test staging production"`
	LogLevel    string   `env:"LOG_LEVEL" env-default:"info"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:","`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// StoreConfig selects where menu records and throttle counters live.
type StoreConfig struct {
	Backend      string `env:"STORE_BACKEND" env-default:"memory" validate:"oneof=memory redis postgres"`
	CacheBackend string `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
}

type BlobConfig struct {
	Backend       string `env:"BLOB_BACKEND" env-default:"local" validate:"oneof=local cloudinary"`
	CloudinaryURL string `env:"CLOUDINARY_URL" validate:"required_if=Backend cloudinary"`
	LocalDir      string `env:"BLOB_LOCAL_DIR" env-default:"media"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:8080/media" validate:"url"`
}

type AdminConfig struct {
	TokenKey string        `env:"ADMIN_TOKEN_SYMMETRIC_KEY" validate:"len=32"`
	TokenTTL time.Duration `env:"ADMIN_TOKEN_TTL" env-default:"24h" validate:"gt=0"`
}

// Address is the host:port the API listens on.
func (c *Config) Address() string {
	return c.AppHost + ":" + c.AppPort
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	defaultFile := os.Getenv(ConfigFileEnv)
	if defaultFile == "" {
		defaultFile = ".env"
	}
	opts = append([]nexus.LoaderOption{
		nexus.WithDefaultFileName(defaultFile),
		nexus.WithValidator(&configValidator{}),
	}, opts...)

	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}

// configValidator runs the struct tags, then requires database credentials
// when records live in postgres.
type configValidator struct {
	tags nexus.DefaultValidator
}

func (v *configValidator) Validate(ctx context.Context, cfg interface{}) error {
	if err := v.tags.Validate(ctx, cfg); err != nil {
		return err
	}
	c, ok := cfg.(*Config)
	if !ok {
		return nil
	}
	if c.Store.Backend == tree.PostgresBackend {
		return c.DB.Validate()
	}
	return nil
}
