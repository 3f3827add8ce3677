package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/api"
	"github.com/mikepea/pantrypulse/pkg/pantrypulse/metrics"
)

// requestLogger logs each request through zerolog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		api.LogRequest(metrics.RuntimeServer, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// metricsMiddleware records request metrics labelled by route template.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.Observe(metrics.RuntimeServer, c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
