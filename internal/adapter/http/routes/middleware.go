package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID      = "X-Request-ID"
	slowRequestThreshold = 200 * time.Millisecond
)

// Flusher persists the in-memory collections.
type Flusher interface {
	Flush(ctx context.Context) error
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString(HeaderRequestID)),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("[http] request", fields...)
		case latency > slowRequestThreshold:
			logger.Warn("[http] slow request", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(HeaderRequestID)))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}

// flushAfterMutation persists the registry after every successful
// non-GET request. A failed flush leaves the registry dirty for the next
// attempt; the response has already been written.
func flushAfterMutation(store Flusher, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := store.Flush(context.WithoutCancel(c.Request.Context())); err != nil {
			logger.Error("[http] flush after mutation failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString(HeaderRequestID)),
				zap.Error(err))
		}
	}
}
