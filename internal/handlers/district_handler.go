package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/services"
	"restaurant-finder-api/pkg/lambda"
)

// DistrictHandler handles dong catalogue requests
type DistrictHandler struct {
	districtService services.DistrictService
	corsHeaders     map[string]string
	now             func() time.Time
}

// NewDistrictHandler creates a new district handler
func NewDistrictHandler(districtService services.DistrictService, authEnabled bool) *DistrictHandler {
	return &DistrictHandler{
		districtService: districtService,
		corsHeaders:     middleware.CORSHeaders(authEnabled),
		now:             time.Now,
	}
}

// @Summary List dong names
// @Description Sample the Seoul dataset and return the sorted dong names found in its addresses
// @Tags districts
// @Produce json
// @Success 200 {object} models.DistrictListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /districts [get]
func (h *DistrictHandler) ListDistricts(c *gin.Context) {
	status, body, err := h.list(c.Request.Context())
	if err != nil {
		_ = c.Error(err).SetMeta(logrus.Fields{"status_code": status})
	}
	c.JSON(status, body)
}

// HandleList serves the catalogue for Lambda
func (h *DistrictHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, body, err := h.list(ctx)
	if err != nil {
		logFailure(req.RequestID, err, logrus.Fields{"status_code": status}, "District extraction failed")
	}
	return lambda.JSON(status, h.corsHeaders, body)
}

func (h *DistrictHandler) list(ctx context.Context) (int, interface{}, error) {
	resp, err := h.districtService.ListDistricts(ctx)
	if err != nil {
		status, body := errorResponse(err, LabelDistrictsFailed, h.now())
		return status, body, err
	}
	return http.StatusOK, resp, nil
}
