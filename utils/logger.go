package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tipapi/pkg/logger"
	"tipapi/pkg/metrics"
)

// RequestIDHeader carries the correlation id on requests and responses.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "requestId"

// RequestIDMiddleware reuses the caller's request id or generates one, and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware, or "" outside it.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LoggerMiddleware logs one line per request at a level chosen by status code.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		if status >= 500 {
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, RequestID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), RequestID(c))
		} else if status >= 400 {
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, RequestID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), RequestID(c))
		} else {
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s, RequestID: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), RequestID(c))
		}
	}
}

// MetricsMiddleware records request counts and latency by route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), start)
	}
}
