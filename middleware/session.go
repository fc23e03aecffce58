package middleware

import (
	"time"

	"faceattendance/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestId"
)

// RequestID gán requestId cho mỗi request, giữ lại giá trị client gửi lên nếu có
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// RequestLogger tags the request and logs one line once it is served.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	tag := RequestID()
	return func(c *gin.Context) {
		start := time.Now()
		tag(c)

		status := c.Writer.Status()
		line := "[%s] %s %s -> %d (%s)"
		args := []interface{}{c.GetString(RequestIDKey), c.Request.Method, c.Request.URL.Path, status, time.Since(start)}
		if status >= 500 {
			log.Error(line, args...)
			return
		}
		log.Info(line, args...)
	}
}
