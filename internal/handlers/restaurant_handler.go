package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/services"
	"restaurant-finder-api/pkg/lambda"
)

// RestaurantHandler handles restaurant listing requests
type RestaurantHandler struct {
	restaurantService services.RestaurantService
	listing           config.ListingConfig
	corsHeaders       map[string]string
	now               func() time.Time
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantService services.RestaurantService, listing config.ListingConfig, authEnabled bool) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		listing:           listing,
		corsHeaders:       middleware.CORSHeaders(authEnabled),
		now:               time.Now,
	}
}

// @Summary List open restaurants
// @Description Fetch one page of the licensing dataset and return the businesses that are currently open, optionally narrowed to a dong
// @Tags restaurants
// @Produce json
// @Param startIdx query int false "First row, 1-based" default(1)
// @Param endIdx query int false "Last row, inclusive" default(100)
// @Param dong query string false "Dong name matched against the lot address"
// @Param 업태구분명 query string false "Business category forwarded to the upstream"
// @Param sigunNm query string false "City forwarded to the upstream"
// @Param source query string false "Upstream source" Enums(seoul, foodsafety)
// @Success 200 {object} models.RestaurantListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	status, body, fields, err := h.list(c.Request.Context(), c.Query)
	if err != nil {
		_ = c.Error(err).SetMeta(fields)
	}
	c.JSON(status, body)
}

// HandleList serves the listing for Lambda
func (h *RestaurantHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, body, fields, err := h.list(ctx, req.Query)
	if err != nil {
		logFailure(req.RequestID, err, fields, "Restaurant listing failed")
	}
	return lambda.JSON(status, h.corsHeaders, body)
}

func (h *RestaurantHandler) list(ctx context.Context, query func(string) string) (int, interface{}, logrus.Fields, error) {
	page, err := parsePageRequest(query, h.listing)
	if err == nil {
		resp, listErr := h.restaurantService.ListRestaurants(ctx, page)
		if listErr == nil {
			return http.StatusOK, resp, nil, nil
		}
		err = listErr
	}

	status, body := errorResponse(err, LabelUpstreamFailed, h.now())
	fields := logrus.Fields{
		"status_code": status,
		"start_idx":   page.StartIndex,
		"end_idx":     page.EndIndex,
		"source":      page.Source,
	}
	return status, body, fields, err
}
