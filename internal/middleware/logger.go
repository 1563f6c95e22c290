package middleware

import (
	"familypoints-backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger logs every request through zap, tagged with an X-Request-ID that
// is generated when the client does not send one.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header("X-Request-ID", requestID)
		}
		c.Set("RequestID", requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}

		for _, e := range c.Errors.Errors() {
			logger.Log.Error(e, zap.String("request_id", requestID))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Log.Error("Server Error", fields...)
		case c.Writer.Status() >= 400:
			logger.Log.Warn("Client Error", fields...)
		default:
			logger.Log.Info("Request", fields...)
		}
	}
}
