package logger

import (
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"
)

// Setup configures the global logrus logger. Unknown levels fall back to info.
func Setup(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006/01/02 15:04:05",
			DisableColors:   true,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	if out != nil {
		logrus.SetOutput(out)
	}
	if err != nil && level != "" {
		logrus.WithField("level", level).Warn("Unknown log level, using info")
	}
}

// RequestLogger assigns a request id to every request, echoes it in the
// response header and logs one line per request once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			RequestIDKey: requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request served")
		}
	}
}

// RequestID returns the id assigned by RequestLogger, or "" outside it
func RequestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
