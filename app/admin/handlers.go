package admin

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

// Login godoc
// @Summary      Admin login
// @Description  Exchange admin credentials for a bearer token. Five failures in fifteen minutes lock the email out.
// @Tags         admin-auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  api.Response{data=LoginResponse}
// @Failure      401      {object}  api.Response{error=api.ErrorInfo}
// @Failure      429      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		api.HandleError(c, err, "Admin", "Login failed")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Logout godoc
// @Summary      Admin logout
// @Description  Revokes the presented token
// @Tags         admin-auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response
// @Router       /api/v1/admin/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), ContextGetToken(c)); err != nil {
		api.InternalErrorResponse(c, "Logout failed")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current admin
// @Tags         admin-auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=Response}
// @Router       /api/v1/admin/me [get]
func (h *Handler) Me(c *gin.Context) {
	api.SuccessResponse(c, http.StatusOK, "Admin retrieved", ToResponse(ContextGetAdmin(c)))
}
