package uploads

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/deps"
)

const ServiceKey = "upload_service"

func InitRepositories(container *deps.Container) {
	container.RegisterService(ServiceKey, NewService(container.Blobs, container.Logger, container.Now))
}

func MountAdmin(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(container.GetService(ServiceKey).(Service))
	r.POST("/uploads", handler.UploadImage)
}
