package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/pkg/lambda"
)

// Serve wraps a Lambda handler with the behaviour the gin middleware chain
// provides on the server: CORS preflight, method checks, request IDs and
// bearer auth.
func Serve(auth *middleware.AuthService, next lambda.HandlerFunc) lambda.HandlerFunc {
	cors := middleware.CORSHeaders(auth.Enabled())

	return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		if req.Method == http.MethodOptions {
			return lambda.Empty(http.StatusOK, cors), nil
		}
		if req.Method != http.MethodGet {
			headers := make(map[string]string, len(cors)+1)
			for key, value := range cors {
				headers[key] = value
			}
			headers["Allow"] = middleware.AllowedMethods
			return lambda.JSON(http.StatusMethodNotAllowed, headers,
				models.NewErrorResponse(middleware.LabelMethod, middleware.MethodNotAllowedDetail(req.Method), time.Now()))
		}

		req.RequestID = middleware.NewRequestID(firstNonEmpty(req.Header(middleware.RequestIDHeader), req.RequestID))

		if _, err := auth.Authorize(req.Header("Authorization")); err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": req.RequestID,
				"path":       req.Path,
				"error":      err.Error(),
			}).Warn("Token validation failed")
			return lambda.JSON(http.StatusUnauthorized, cors,
				models.NewErrorResponse(middleware.LabelUnauthorized, err.Error(), time.Now()))
		}

		resp, err := next(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.Headers == nil {
			resp.Headers = make(map[string]string)
		}
		resp.Headers[middleware.RequestIDHeader] = req.RequestID
		return resp, nil
	}
}
