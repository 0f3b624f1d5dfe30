package middleware

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tonecraft-ai/tonecraft-api/internal/logger"
	"github.com/tonecraft-ai/tonecraft-api/internal/metrics"
)

const sentryFlushTimeout = 2 * time.Second

var sentryMetrics = metrics.NewSentryMetrics()

// RequestTracking tags every request with an ID, logs its outcome by status
// class and records latency metrics. A nil CloudWatch client skips the
// CloudWatch half.
func RequestTracking(cw *metrics.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		path := c.Request.URL.Path

		fields := logger.WithRequest(c)
		fields["status_code"] = status
		fields["duration_ms"] = duration.Milliseconds()
		fields["client_ip"] = c.ClientIP()

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed with server error", nil, fields)
		case status >= http.StatusBadRequest:
			logger.Warn("Request failed with client error", fields)
		default:
			logger.Info("Request completed", fields)
		}

		sentryMetrics.RecordAPIRequest(c.Request.Context(), path, status, duration)
		cw.RecordAPIRequest(path, status, duration)
	}
}

// SentryMiddleware attaches a request-scoped Sentry hub. Repanic hands the
// panic on to RecoverWithSentry, which owns the client response.
func SentryMiddleware() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         sentryFlushTimeout,
	})
}

// RecoverWithSentry turns panics into Sentry events and a 500 carrying the
// request ID, so operators can match client reports to events.
func RecoverWithSentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			if hub := sentrygin.GetHubFromContext(c); hub != nil {
				hub.WithScope(func(scope *sentry.Scope) {
					scope.SetRequest(c.Request)
					scope.SetContext("request", map[string]interface{}{
						"request_id": c.GetString("request_id"),
						"method":     c.Request.Method,
						"path":       c.Request.URL.Path,
						"client_ip":  c.ClientIP(),
					})
					if userID := c.GetString("user_id"); userID != "" {
						scope.SetUser(sentry.User{ID: userID})
					}
					hub.RecoverWithContext(c.Request.Context(), r)
				})
			}

			fields := logger.WithRequest(c)
			fields["panic"] = r
			logger.Error("Panic recovered", nil, fields)

			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": c.GetString("request_id"),
			})
			c.Abort()
		}()
		c.Next()
	}
}
