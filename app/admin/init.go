package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/deps"
)

const (
	RepoKey    = "admin_repository"
	ServiceKey = "admin_service"
)

func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.Tree)
	container.RegisterRepository(RepoKey, repo)
	container.RegisterService(ServiceKey, NewService(
		repo,
		container.TokenMaker,
		container.LoginAttempts,
		container.RevokedTokens,
		container.TokenTTL,
		container.Logger,
	))
}

// MountPublic registers the login route, which sits beside the guarded admin group.
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	r.POST("/admin/login", createHandler(container).Login)
}

func MountAdmin(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)
	r.POST("/logout", handler.Logout)
	r.GET("/me", handler.Me)
}

// Middleware returns the guard for admin routes.
func Middleware(container *deps.Container) gin.HandlerFunc {
	return AuthMiddleware(GetService(container))
}

func GetService(container *deps.Container) Service {
	return container.GetService(ServiceKey).(Service)
}

func createHandler(container *deps.Container) *Handler {
	return NewHandler(GetService(container))
}
