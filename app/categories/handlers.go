package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/api"
)

// Handler handles HTTP requests for categories
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories ascending by order
// @Tags         categories
// @Produce      json
// @Success      200  {object}  api.Response{data=[]CategoryResponse}
// @Failure      500  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		api.HandleError(c, err, "Category", "Failed to fetch categories")
		return
	}
	api.ListResponse(c, "Categories retrieved", categories, len(categories))
}

// GetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  api.Response{data=CategoryResponse}
// @Failure      404  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/categories/{id} [get]
func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.service.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.HandleError(c, err, "Category", "Failed to fetch category")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Category retrieved", category)
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Missing English and Arabic names default to the Turkish name
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateCategoryRequest  true  "Category"
// @Success      201      {object}  api.Response{data=CategoryResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		api.HandleError(c, err, "Category", "Failed to create category")
		return
	}
	api.CreatedResponse(c, "Category created", category)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Sparse update; blank text keeps the stored value, clear nulls listed fields
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Category ID"
// @Param        request  body      UpdateCategoryRequest  true  "Fields to change"
// @Success      200      {object}  api.Response{data=CategoryResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      404      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		api.HandleError(c, err, "Category", "Failed to update category")
		return
	}
	api.UpdatedResponse(c, "Category updated", category)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Products in the category are left in place
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  api.Response
// @Router       /api/v1/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		api.HandleError(c, err, "Category", "Failed to delete category")
		return
	}
	api.DeletedResponse(c, "Category deleted")
}
