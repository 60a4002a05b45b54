package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/deps"
)

const (
	RepoKey    = "category_repository"
	ServiceKey = "category_service"
)

// InitRepositories registers the category repository and service.
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.Tree)
	container.RegisterRepository(RepoKey, repo)
	container.RegisterService(ServiceKey, NewService(repo, container.Sanitizer, container.Logger))
}

func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/categories")
	group.GET("", handler.ListCategories)
	group.GET("/:id", handler.GetCategory)
}

func MountAdmin(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/categories")
	group.POST("", handler.CreateCategory)
	group.PUT("/:id", handler.UpdateCategory)
	group.DELETE("/:id", handler.DeleteCategory)
}

func createHandler(container *deps.Container) *Handler {
	return NewHandler(container.GetService(ServiceKey).(Service))
}
