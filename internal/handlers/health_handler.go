package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/pkg/lambda"
)

// HealthMessage is reported by the health check
const HealthMessage = "Public Data Proxy Server is running!"

// Endpoints lists the public routes
var Endpoints = map[string]string{
	"restaurants": "/api/restaurants",
	"districts":   "/api/districts",
	"health":      "/api/health",
}

// HealthHandler reports liveness
type HealthHandler struct {
	corsHeaders map[string]string
	mode        string
	now         func() time.Time
}

// NewHealthHandler creates a new health handler reporting the given
// deployment mode
func NewHealthHandler(authEnabled bool, mode string) *HealthHandler {
	return &HealthHandler{
		corsHeaders: middleware.CORSHeaders(authEnabled),
		mode:        mode,
		now:         time.Now,
	}
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.response())
}

// HandleHealth serves the health check for Lambda
func (h *HealthHandler) HandleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return lambda.JSON(http.StatusOK, h.corsHeaders, h.response())
}

func (h *HealthHandler) response() *models.HealthResponse {
	return &models.HealthResponse{
		Success:   true,
		Message:   HealthMessage,
		Mode:      h.mode,
		Timestamp: models.FormatTimestamp(h.now()),
		Endpoints: Endpoints,
	}
}
