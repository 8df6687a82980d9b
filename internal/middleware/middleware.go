package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/models"
)

// Failure labels written by middleware
const (
	LabelInternal     = "내부 서버 오류"
	LabelUnauthorized = "인증 실패"
	LabelRateLimited  = "요청 한도 초과"
	LabelMethod       = "허용되지 않은 메서드"
)

// MethodNotAllowed answers requests whose path exists but not for the
// request's method
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Allow", AllowedMethods)
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, models.NewErrorResponse(
			LabelMethod, MethodNotAllowedDetail(c.Request.Method), time.Now()))
	}
}

// MethodNotAllowedDetail is the failure detail for an unsupported method
func MethodNotAllowedDetail(method string) string {
	return method + " 메서드는 지원하지 않습니다"
}

// AllowedMethods are the methods every route accepts
const AllowedMethods = "GET, OPTIONS"

// CORSHeaders returns the headers attached to every response. Authorization
// is only advertised when bearer auth is enabled.
func CORSHeaders(authEnabled bool) map[string]string {
	allowHeaders := "Content-Type"
	if authEnabled {
		allowHeaders = "Content-Type, Authorization"
	}
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": AllowedMethods,
		"Access-Control-Allow-Headers": allowHeaders,
	}
}

// CORS middleware for handling Cross-Origin Resource Sharing. Preflight
// requests are answered with 200 and an empty body.
func CORS(authEnabled bool) gin.HandlerFunc {
	headers := CORSHeaders(authEnabled)

	return func(c *gin.Context) {
		for key, value := range headers {
			c.Header(key, value)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// ErrorHandler logs the errors handlers attach with c.Error, including any
// logrus.Fields set as the error's meta, and writes the failure envelope
// when the handler did not answer.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		entry := logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
		if fields, ok := err.Meta.(logrus.Fields); ok {
			entry = entry.WithFields(fields)
		}

		if c.Writer.Written() {
			entry.WithField("status_code", c.Writer.Status()).Error("Request error")
			return
		}

		entry.WithField("status_code", http.StatusInternalServerError).Error("Request error")
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(LabelInternal, err.Error(), time.Now()))
	}
}
