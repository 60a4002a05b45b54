package app

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/qrmenu/app/admin"
	"github.com/joefazee/qrmenu/app/api"
	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/dashboard"
	apiDoc "github.com/joefazee/qrmenu/app/doc"
	"github.com/joefazee/qrmenu/app/menu"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/app/uploads"
	"github.com/joefazee/qrmenu/internal/blob"
	"github.com/joefazee/qrmenu/internal/deps"
	"github.com/joefazee/qrmenu/internal/router"
)

const Version = "1.0.0"

// NewRouter mounts every module on engine. The container must have been built
// by NewContainer.
func NewRouter(engine *gin.Engine, cfg *Config, container *deps.Container) *gin.Engine {
	engine.Use(api.CorsMiddleware(cfg.CORSOrigins))
	engine.GET("/api/v1/healthz", api.HealthHandler(cfg.Env, Version))

	if cfg.Blob.Backend == blob.LocalBackend {
		if u, err := url.Parse(cfg.Blob.PublicBaseURL); err == nil && u.Path != "" && u.Path != "/" {
			engine.Static(u.Path, cfg.Blob.LocalDir)
		}
	}

	m := router.NewMounter(container)
	m.Public(engine).
		Mount(menu.MountPublic).
		Mount(categories.MountPublic).
		Mount(products.MountPublic).
		Mount(admin.MountPublic)

	m.Admin(engine, admin.Middleware(container)).
		Mount(admin.MountAdmin).
		Mount(dashboard.MountAdmin).
		Mount(categories.MountAdmin).
		Mount(products.MountAdmin).
		Mount(uploads.MountAdmin)

	apiDoc.Init(engine, cfg.Env, cfg.PublicURL)
	return engine
}
