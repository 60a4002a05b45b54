package menu

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/internal/deps"
)

const ServiceKey = "menu_service"

// InitRepositories must run after the category and product modules.
func InitRepositories(container *deps.Container) {
	container.RegisterService(ServiceKey, NewService(
		container.GetRepository(categories.RepoKey).(categories.Repository),
		container.GetRepository(products.RepoKey).(products.Repository),
		container.Logger,
	))
}

func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(container.GetService(ServiceKey).(Service))
	r.GET("/menu", handler.GetMenu)
}
