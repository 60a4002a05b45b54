package products

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/deps"
)

const (
	RepoKey    = "product_repository"
	ServiceKey = "product_service"
)

func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.Tree)
	container.RegisterRepository(RepoKey, repo)
	container.RegisterService(ServiceKey, NewService(repo, container.Sanitizer, container.Logger))
}

func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/products")
	group.GET("", handler.ListProducts)
	group.GET("/:id", handler.GetProduct)
}

func MountAdmin(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	group := r.Group("/products")
	group.POST("", handler.CreateProduct)
	group.POST("/activate-all", handler.ActivateAll)
	group.PUT("/:id", handler.UpdateProduct)
	group.DELETE("/:id", handler.DeleteProduct)
}

func createHandler(container *deps.Container) *Handler {
	return NewHandler(container.GetService(ServiceKey).(Service))
}
