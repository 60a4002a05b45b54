package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

// Response represents a standardized API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ListMeta represents list metadata
type ListMeta struct {
	Count int `json:"count"`
}

// SuccessResponse sends a successful response
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := Response{
		Success: true,
		Message: message,
		Data:    data,
	}
	c.JSON(statusCode, response)
}

// SuccessResponseWithMeta sends a successful response with metadata
func SuccessResponseWithMeta(c *gin.Context,
	statusCode int,
	message string,
	data interface{},
	meta interface{}) {
	response := Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
	c.JSON(statusCode, response)
}

// ErrorResponse sends an error response
func ErrorResponse(c *gin.Context,
	statusCode int,
	code string,
	message string,
	details interface{}) {
	response := Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	c.JSON(statusCode, response)
}

// ValidationErrorResponse sends a validation error response
func ValidationErrorResponse(c *gin.Context, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", details)
}

// NotFoundResponse sends a not found error response
func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found", nil)
}

// UnauthorizedResponse sends an unauthorized error response
func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized access", nil)
}

// BadRequestResponse sends a response for bodies that could not be decoded
func BadRequestResponse(c *gin.Context, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid request data", details)
}

// TooManyRequestsResponse sends a throttling response
func TooManyRequestsResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message, nil)
}

// UploadFailedResponse reports a blob store failure
func UploadFailedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadGateway, "UPLOAD_FAILED", message, nil)
}

// InternalErrorResponse sends an internal server error response
func InternalErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

// ConflictResponse sends a conflict error response
func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message, nil)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

// UpdatedResponse sends an updated response
func UpdatedResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusOK, message, data)
}

// DeletedResponse sends a deleted response
func DeletedResponse(c *gin.Context, message string) {
	SuccessResponse(c, http.StatusOK, message, nil)
}

// ListResponse sends a list response with count metadata
func ListResponse(c *gin.Context, message string, data interface{}, count int) {
	meta := ListMeta{Count: count}
	SuccessResponseWithMeta(c, http.StatusOK, message, data, meta)
}

// HandleError maps service errors onto the response envelope. resource names
// the entity in not-found messages and fallback is the 500 message.
func HandleError(c *gin.Context, err error, resource, fallback string) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message, verr.Fields)
	case errors.Is(err, models.ErrRecordNotFound):
		NotFoundResponse(c, resource)
	case errors.Is(err, models.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", nil)
	case errors.Is(err, models.ErrTooManyAttempts):
		TooManyRequestsResponse(c, "Too many failed login attempts, try again later")
	case errors.Is(err, models.ErrAdminExists):
		ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrUpload):
		UploadFailedResponse(c, "Image upload failed")
	default:
		InternalErrorResponse(c, fallback)
	}
}
