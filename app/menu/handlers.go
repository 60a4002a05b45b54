package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/joefazee/qrmenu/app/api"
	"github.com/joefazee/qrmenu/models"
)

// Order matches models.Languages; the first entry is the fallback.
var matcher = language.NewMatcher([]language.Tag{
	language.Turkish,
	language.English,
	language.Arabic,
})

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ResolveLanguage picks the menu language from the lang query value, then the
// Accept-Language header, defaulting to Turkish.
func ResolveLanguage(query, acceptLanguage string) models.Language {
	if lang, err := models.ParseLanguage(query); err == nil {
		return lang
	}
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	return models.Languages[idx]
}

// GetMenu godoc
// @Summary      Public menu
// @Description  Categories with their active products, localized to one language
// @Tags         menu
// @Produce      json
// @Param        lang             query     string  false  "tr, en or ar"
// @Param        category_id      query     string  false  "Only this category"
// @Param        Accept-Language  header    string  false  "Used when lang is absent"
// @Success      200              {object}  api.Response{data=Response}
// @Failure      404              {object}  api.Response{error=api.ErrorInfo}
// @Failure      500              {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/menu [get]
func (h *Handler) GetMenu(c *gin.Context) {
	lang := ResolveLanguage(c.Query("lang"), c.GetHeader("Accept-Language"))
	c.Header("Content-Language", string(lang))
	c.Header("Vary", "Accept-Language")

	menu, err := h.service.GetMenu(c.Request.Context(), lang, c.Query("category_id"))
	if err != nil {
		api.HandleError(c, err, "Category", "Failed to load menu")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Menu retrieved", menu)
}
