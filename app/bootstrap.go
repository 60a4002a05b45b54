package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joefazee/qrmenu/app/admin"
	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/dashboard"
	"github.com/joefazee/qrmenu/app/database"
	"github.com/joefazee/qrmenu/app/menu"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/app/uploads"
	"github.com/joefazee/qrmenu/internal/blob"
	"github.com/joefazee/qrmenu/internal/cache"
	"github.com/joefazee/qrmenu/internal/deps"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/sanitizer"
	"github.com/joefazee/qrmenu/internal/security"
	"github.com/joefazee/qrmenu/internal/tree"
)

// Backends holds the connections opened for a Config. Close releases them.
type Backends struct {
	Tree  tree.Tree
	Redis redis.UniversalClient

	closers []func() error
}

func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// OpenBackends connects the configured tree store, plus redis when either the
// store or the caches need it.
func OpenBackends(ctx context.Context, cfg *Config) (*Backends, error) {
	b := &Backends{}

	if cfg.Store.Backend == tree.RedisBackend || cfg.Store.CacheBackend == cache.RedisBackend {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		b.Redis = client
		b.closers = append(b.closers, client.Close)
	}

	switch cfg.Store.Backend {
	case tree.RedisBackend:
		b.Tree = tree.NewRedisTree(b.Redis)
	case tree.PostgresBackend:
		db, err := database.New(&cfg.DB)
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.closers = append(b.closers, sqlDB.Close)
		b.Tree = tree.NewPostgresTree(db)
	default:
		b.Tree = tree.NewMemoryTree()
	}
	return b, nil
}

// NewBlobStore builds the configured image store.
func NewBlobStore(cfg *BlobConfig) (blob.Store, error) {
	if cfg.Backend == blob.CloudinaryBackend {
		return blob.NewCloudinaryStore(cfg.CloudinaryURL)
	}
	return blob.NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL)
}

func newCaches(cfg *Config, b *Backends) (cache.Counter, cache.Cache[string]) {
	if cfg.Store.CacheBackend == cache.RedisBackend {
		return cache.NewRedisCounter(b.Redis, "throttle:"),
			cache.NewRedisCache[string](b.Redis, "revoked:", 0)
	}
	return cache.NewMemoryCounter(), cache.NewMemoryCache[string]()
}

// NewContainer wires shared dependencies and registers every module.
func NewContainer(cfg *Config, b *Backends, log logger.Logger) (*deps.Container, error) {
	blobs, err := NewBlobStore(&cfg.Blob)
	if err != nil {
		return nil, fmt.Errorf("create blob store: %w", err)
	}
	maker, err := security.NewPasetoMaker(cfg.Admin.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("create token maker: %w", err)
	}
	attempts, revoked := newCaches(cfg, b)

	container := deps.NewContainer(b.Tree, blobs, maker, sanitizer.NewHTMLStripper(), log, attempts, revoked)
	container.TokenTTL = cfg.Admin.TokenTTL

	RegisterModules(container)
	return container, nil
}

// RegisterModules initializes modules in dependency order.
func RegisterModules(container *deps.Container) {
	categories.InitRepositories(container)
	products.InitRepositories(container)
	uploads.InitRepositories(container)
	admin.InitRepositories(container)
	menu.InitRepositories(container)
	dashboard.InitRepositories(container)
}
