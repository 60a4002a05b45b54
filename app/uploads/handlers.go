package uploads

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Stores a category or product image and returns its public URL
// @Tags         admin-uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        folder  formData  string  true  "categories or products"
// @Param        file    formData  file    true  "Image file"
// @Success      201     {object}  api.Response{data=UploadResponse}
// @Failure      400     {object}  api.Response{error=api.ErrorInfo}
// @Failure      502     {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/uploads [post]
func (h *Handler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		api.BadRequestResponse(c, "file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	defer file.Close()

	res, err := h.service.UploadImage(c.Request.Context(), c.PostForm("folder"), header.Filename, header.Size, file)
	if err != nil {
		api.HandleError(c, err, "Image", "Failed to upload image")
		return
	}
	api.CreatedResponse(c, "Image uploaded", res)
}
