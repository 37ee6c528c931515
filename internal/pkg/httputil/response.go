package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/apperror"
)

const (
	sessionKey   = "map_session"
	requestIDKey = "request_id"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

func InternalError(c *gin.Context) {
	ErrorWithCode(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// HandleError maps domain and application errors to a JSON envelope.
// Anything unrecognised becomes a 500 without leaking details.
func HandleError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.FromDomain(err)
	}
	if appErr == nil || appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
		InternalError(c)
		return
	}
	ErrorWithCode(c, appErr.StatusCode, appErr.Code, appErr.Message)
}

func GetSession(c *gin.Context) *entity.MapSession {
	if s, exists := c.Get(sessionKey); exists {
		return s.(*entity.MapSession)
	}
	return nil
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(requestIDKey); exists {
		return id.(string)
	}
	return ""
}
