package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"studiobook/internal/metrics"
	"studiobook/internal/pkg/response"
)

// RequestLogger logs every request with latency and status, counts it in
// Prometheus, and recovers from handler panics.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("panic", fmt.Sprintf("%v", recovered)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
				c.Abort()
			}

			status := c.Writer.Status()
			metrics.IncHTTP(c.Request.Method, c.FullPath(), strconv.Itoa(status))

			evt := log.Info()
			if status >= http.StatusInternalServerError {
				evt = log.Error()
			}
			evt.
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Str("user_id", c.GetString("user_id")).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("request")
		}()

		c.Next()
	}
}
