package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/api/restaurants", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "subject": c.GetString(SubjectKey)})
	})
	router.OPTIONS("/api/restaurants", func(c *gin.Context) {
		c.String(http.StatusTeapot, "should not be reached")
	})
	return router
}

func TestCORS(t *testing.T) {
	router := newTestRouter(CORS(false))

	t.Run("Preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/restaurants", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got %q", w.Body.String())
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
			t.Errorf("Unexpected allow methods %q", got)
		}
	})

	t.Run("Get", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Expected wildcard origin, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
			t.Errorf("Expected Content-Type only, got %q", got)
		}
	})
}

func TestCORSHeadersWithAuth(t *testing.T) {
	headers := CORSHeaders(true)
	if headers["Access-Control-Allow-Headers"] != "Content-Type, Authorization" {
		t.Errorf("Expected Authorization to be allowed, got %q", headers["Access-Control-Allow-Headers"])
	}
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(RequestID())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected generated request ID")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("Expected incoming request ID to be kept, got %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	router := newTestRouter(RateLimiter(0.001, 1))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %d", second.Code)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	router := newTestRouter(RateLimiter(0, 0))

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestAuthentication(t *testing.T) {
	auth := NewAuthService(&AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour})
	token, err := auth.GenerateToken("client-1", []string{"read"})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := NewAuthService(&AuthConfig{JWTSecret: "other-secret"})
	foreign, err := other.GenerateToken("client-2", nil)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	router := newTestRouter(CORS(true), Authentication(auth))

	tests := []struct {
		name   string
		method string
		header string
		want   int
	}{
		{name: "valid token", method: http.MethodGet, header: "Bearer " + token, want: http.StatusOK},
		{name: "missing header", method: http.MethodGet, want: http.StatusUnauthorized},
		{name: "wrong scheme", method: http.MethodGet, header: "Basic " + token, want: http.StatusUnauthorized},
		{name: "foreign signature", method: http.MethodGet, header: "Bearer " + foreign, want: http.StatusUnauthorized},
		{name: "preflight skips auth", method: http.MethodOptions, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/api/restaurants", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthorizeDisabled(t *testing.T) {
	auth := NewAuthService(&AuthConfig{})
	if auth.Enabled() {
		t.Fatal("Expected auth to be disabled without a secret")
	}

	claims, err := auth.Authorize("")
	if err != nil || claims != nil {
		t.Errorf("Expected disabled auth to accept, got %v, %v", claims, err)
	}
}

func TestErrorHandler(t *testing.T) {
	hook := logtest.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/unanswered", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	router.GET("/answered", func(c *gin.Context) {
		_ = c.Error(errors.New("upstream down")).SetMeta(logrus.Fields{"start_idx": 1})
		c.JSON(http.StatusBadGateway, gin.H{"success": false})
	})

	t.Run("Unanswered", func(t *testing.T) {
		hook.Reset()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unanswered", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Expected 500, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body["success"] != false || body["error"] != LabelInternal || body["detail"] != "boom" || body["timestamp"] == "" {
			t.Errorf("Unexpected failure envelope %v", body)
		}
		if entry := hook.LastEntry(); entry == nil || entry.Data["error"] != "boom" {
			t.Errorf("Expected error to be logged, got %+v", entry)
		}
	})

	t.Run("Answered", func(t *testing.T) {
		hook.Reset()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/answered", nil))

		if w.Code != http.StatusBadGateway {
			t.Errorf("Handler status must be kept, got %d", w.Code)
		}
		entry := hook.LastEntry()
		if entry == nil {
			t.Fatal("Expected error to be logged")
		}
		if entry.Data["start_idx"] != 1 || entry.Data["status_code"] != http.StatusBadGateway {
			t.Errorf("Expected meta fields in log entry, got %v", entry.Data)
		}
		if entry.Data["request_id"] == "" {
			t.Error("Expected request ID in log entry")
		}
	})
}

func TestMethodNotAllowed(t *testing.T) {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(MethodNotAllowed())
	router.GET("/api/restaurants", func(c *gin.Context) {})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/restaurants", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") != AllowedMethods {
		t.Errorf("Unexpected Allow header %q", w.Header().Get("Allow"))
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["error"] != LabelMethod || body["detail"] != MethodNotAllowedDetail(http.MethodPost) {
		t.Errorf("Unexpected failure envelope %v", body)
	}
}
