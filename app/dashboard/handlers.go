package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetStats godoc
// @Summary      Menu statistics
// @Tags         admin-dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=Stats}
// @Failure      500  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		api.HandleError(c, err, "Stats", "Failed to load statistics")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Statistics retrieved", stats)
}
