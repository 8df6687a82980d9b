package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/adapters/opendata"
	"restaurant-finder-api/internal/models"
)

// Failure labels
const (
	LabelUpstreamFailed   = "API 호출 실패"
	LabelDistrictsFailed  = "동 목록 추출 실패"
	LabelValidationFailed = "요청 검증 실패"
)

// errorResponse maps err to an HTTP status and failure envelope. Validation
// errors are 400; everything else is 500 under label.
func errorResponse(err error, label string, now time.Time) (int, *models.ErrorResponse) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, models.NewErrorResponse(LabelValidationFailed, validationErr.Message, now)
	}

	var upstreamErr *opendata.UpstreamError
	if errors.As(err, &upstreamErr) {
		return http.StatusInternalServerError, models.NewErrorResponse(label, upstreamErr.Error(), now)
	}

	return http.StatusInternalServerError, models.NewErrorResponse(label, err.Error(), now)
}

// logFailure logs a Lambda request failure. On the server the same errors
// reach middleware.ErrorHandler through c.Error.
func logFailure(requestID string, err error, fields logrus.Fields, msg string) {
	logrus.WithFields(fields).WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error(msg)
}
