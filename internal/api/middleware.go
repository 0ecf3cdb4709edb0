package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsMiddleware answers permissive CORS: any origin, the analysis headers,
// and an immediate 204 for preflight requests.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// recoveryMiddleware converts panics into envelope 500s so internal details
// never leak past a human-readable message.
func recoveryMiddleware(logf func(format string, args ...interface{})) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logf("panic in %s: %v", c.FullPath(), r)
				respondError(c, http.StatusInternalServerError, "internal error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
