package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	requestIDKey        = "request_id"
	RequestIDHeaderName = "X-Request-ID"
	maxRequestIDLength  = 128
)

// RequestID returns the ID assigned by AccessLog, or "" outside of it.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// LogError writes an ERROR line tagged with the request's ID.
func LogError(c *gin.Context, format string, args ...any) {
	log.Printf("ERROR: request_id=%s "+format, append([]any{RequestID(c)}, args...)...)
}

// AccessLog gives every request an ID, echoes it in X-Request-ID and writes one
// access line once the handler chain returns. A usable client ID is kept.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()
		requestID := sanitizeRequestID(c.GetHeader(RequestIDHeaderName))
		if requestID == "" {
			requestID = newRequestID()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeaderName, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		log.Printf(
			"request_id=%s method=%s route=%s query=%q status=%d bytes=%d latency_ms=%.2f client_ip=%s",
			requestID,
			c.Request.Method,
			route,
			c.Request.URL.RawQuery,
			c.Writer.Status(),
			c.Writer.Size(),
			float64(time.Since(startedAt).Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}

// sanitizeRequestID trims and truncates raw; IDs with spaces or non-printable
// bytes are dropped so they cannot break the access line format.
func sanitizeRequestID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) > maxRequestIDLength {
		id = id[:maxRequestIDLength]
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return ""
		}
	}
	return id
}

func newRequestID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UTC().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(b[:])
}
