package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/categories"
	"github.com/joefazee/qrmenu/app/products"
	"github.com/joefazee/qrmenu/internal/deps"
)

const ServiceKey = "dashboard_service"

func InitRepositories(container *deps.Container) {
	container.RegisterService(ServiceKey, NewService(
		container.GetRepository(categories.RepoKey).(categories.Repository),
		container.GetRepository(products.RepoKey).(products.Repository),
		container.Logger,
	))
}

func MountAdmin(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(container.GetService(ServiceKey).(Service))
	r.GET("/stats", handler.GetStats)
}
