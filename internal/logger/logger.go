package logger

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Fields carries structured log fields
type Fields map[string]interface{}

// Tags promoted onto Sentry events for filtering. Everything else rides
// along as event context.
var tagFields = []string{"request_id", "model", "purpose", "mode", "genre"}

// WithRequest builds the base fields for one request. The identity values
// are whatever the active auth middleware put on the context.
func WithRequest(c *gin.Context) Fields {
	fields := Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}
	if userID := c.GetString("user_id"); userID != "" {
		fields["user_id"] = userID
	}
	return fields
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	log.Printf("[INFO] %s %s", msg, render(fields))
	breadcrumb(msg, fields, "info", sentry.LevelInfo)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields Fields) {
	log.Printf("[WARN] %s %s", msg, render(fields))
	breadcrumb(msg, fields, "warning", sentry.LevelWarning)
}

// Error logs an error with structured fields and reports it to Sentry. A
// nil err still produces an event, carrying just the message and fields.
func Error(msg string, err error, fields Fields) {
	log.Printf("[ERROR] %s: %v %s", msg, err, render(fields))

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetContext("log_fields", map[string]interface{}(fields))
		for _, name := range tagFields {
			if v, ok := fields[name].(string); ok && v != "" {
				scope.SetTag(name, v)
			}
		}
		if err != nil {
			hub.CaptureException(err)
		} else {
			hub.CaptureMessage(msg)
		}
	})
}

func breadcrumb(msg string, fields Fields, typ string, level sentry.Level) {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:     typ,
		Category: "api",
		Message:  msg,
		Data:     fields,
		Level:    level,
	})
}

// render formats fields as {k=v, ...} with sorted keys, so repeated runs of
// one request shape produce greppable, stable lines.
func render(fields Fields) string {
	if len(fields) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteByte('=')
		switch v := fields[k].(type) {
		case string:
			b.WriteString(v)
		case float64:
			fmt.Fprintf(&b, "%.2f", v)
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	b.WriteByte('}')
	return b.String()
}
