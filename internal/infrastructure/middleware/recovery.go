package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/relief-map-backend/internal/pkg/httputil"
)

// Recovery turns a panic in a handler into a 500 envelope. Gin already
// detects broken client connections; everything else is logged with the
// map session it happened in.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		fields := []zap.Field{
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.StackSkip("stack", 2),
		}
		if s, ok := c.Get(SessionKey); ok {
			fields = append(fields, zap.String("session_id", s.(*entity.MapSession).ID))
		}
		logger.Error("handler panicked", fields...)

		httputil.InternalError(c)
		c.Abort()
	})
}
