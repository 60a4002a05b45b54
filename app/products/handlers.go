package products

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/api"
)

// Handler handles HTTP requests for products
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListProducts godoc
// @Summary      List products
// @Description  Products ascending by order, optionally narrowed to one category or to active products
// @Tags         products
// @Produce      json
// @Param        category_id  query     string  false  "Category ID"
// @Param        active       query     bool    false  "Only active products"
// @Success      200          {object}  api.Response{data=[]ProductResponse}
// @Failure      500          {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	filter := ProductFilter{CategoryID: c.Query("category_id")}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			api.BadRequestResponse(c, "active must be true or false")
			return
		}
		filter.ActiveOnly = active
	}

	products, err := h.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		api.HandleError(c, err, "Product", "Failed to fetch products")
		return
	}
	api.ListResponse(c, "Products retrieved", products, len(products))
}

// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  api.Response{data=ProductResponse}
// @Failure      404  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.HandleError(c, err, "Product", "Failed to fetch product")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Product retrieved", product)
}

// CreateProduct godoc
// @Summary      Create a product
// @Tags         admin-products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateProductRequest  true  "Product"
// @Success      201      {object}  api.Response{data=ProductResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		api.HandleError(c, err, "Product", "Failed to create product")
		return
	}
	api.CreatedResponse(c, "Product created", product)
}

// UpdateProduct godoc
// @Summary      Update a product
// @Tags         admin-products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "Product ID"
// @Param        request  body      UpdateProductRequest  true  "Fields to change"
// @Success      200      {object}  api.Response{data=ProductResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      404      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/admin/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		api.HandleError(c, err, "Product", "Failed to update product")
		return
	}
	api.UpdatedResponse(c, "Product updated", product)
}

// DeleteProduct godoc
// @Summary      Delete a product
// @Tags         admin-products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  api.Response
// @Router       /api/v1/admin/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		api.HandleError(c, err, "Product", "Failed to delete product")
		return
	}
	api.DeletedResponse(c, "Product deleted")
}

// ActivateAll godoc
// @Summary      Activate every product
// @Tags         admin-products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=ActivateAllResponse}
// @Router       /api/v1/admin/products/activate-all [post]
func (h *Handler) ActivateAll(c *gin.Context) {
	result, err := h.service.ActivateAll(c.Request.Context())
	if err != nil {
		api.HandleError(c, err, "Product", "Failed to activate products")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Products activated", result)
}
