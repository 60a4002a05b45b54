package admin

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/app/api"
	"github.com/joefazee/qrmenu/internal/security"
	"github.com/joefazee/qrmenu/models"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"

	ContextAdmin = "context_admin"
	ContextToken = "context_token"
)

// AuthMiddleware admits requests carrying a live admin bearer token.
func AuthMiddleware(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Vary", AuthorizationHeaderKey)

		fields := strings.Fields(c.GetHeader(AuthorizationHeaderKey))
		if len(fields) != 2 || fields[0] != AuthorizationTypeBearer {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		a, payload, err := service.Authenticate(c.Request.Context(), fields[1])
		if err != nil {
			if errors.Is(err, models.ErrUnauthorized) {
				api.UnauthorizedResponse(c)
			} else {
				api.InternalErrorResponse(c, "Could not verify credentials")
			}
			c.Abort()
			return
		}

		c.Set(ContextAdmin, a)
		c.Set(ContextToken, payload)
		c.Next()
	}
}

// ContextGetAdmin returns the admin set by AuthMiddleware.
func ContextGetAdmin(c *gin.Context) *models.Admin {
	a, ok := c.Get(ContextAdmin)
	if !ok {
		panic("missing admin value in context")
	}
	return a.(*models.Admin)
}

func ContextGetToken(c *gin.Context) *security.Payload {
	token, ok := c.Get(ContextToken)
	if !ok {
		panic("missing token value in context")
	}
	return token.(*security.Payload)
}
