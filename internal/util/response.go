package util

import (
	"errors"
	"net/http"

	"elearning_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// PageResponse wraps paginated lists.
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: false, Message: message})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// RespondError maps the service error taxonomy to an HTTP status and the
// envelope. Unrecognized errors are logged and reported as 500.
func RespondError(c *gin.Context, err error) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		capacityErr   *CapacityError
		conflictErr   *ConflictError
		uploadErr     *UploadError
		authErr       *AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		Error(c, http.StatusBadRequest, validationErr.Msg)
	case errors.As(err, &notFoundErr):
		Error(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &capacityErr):
		Error(c, http.StatusConflict, capacityErr.Msg)
	case errors.As(err, &conflictErr):
		Error(c, http.StatusConflict, conflictErr.Msg)
	case errors.As(err, &uploadErr):
		Error(c, http.StatusBadRequest, uploadErr.Msg)
	case errors.As(err, &authErr):
		Error(c, http.StatusUnauthorized, authErr.Msg)
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c)
	default:
		logger.Log.Error("Internal server error", zap.Error(err))
		InternalServerError(c)
	}
}
