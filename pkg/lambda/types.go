package lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"restaurant-finder-api/internal/middleware"
	"restaurant-finder-api/internal/models"
)

// InternalErrorDetail is the detail reported when a handler fails outright
const InternalErrorDetail = "내부 처리 중 오류가 발생했습니다"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// FromAPIGateway converts an API Gateway proxy event to a Request. Query
// parameters arrive already URL-decoded.
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
		RequestID:   event.RequestContext.RequestID,
	}
}

// ToAPIGateway converts the response to an API Gateway proxy response
func (r *Response) ToAPIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}

// Query returns the named query parameter, or "" when absent
func (r *Request) Query(name string) string {
	return r.QueryParams[name]
}

// Header returns the named header. API Gateway preserves the client's casing,
// so the lookup is case-insensitive.
func (r *Request) Header(name string) string {
	if value, ok := r.Headers[name]; ok {
		return value
	}
	for key, value := range r.Headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	return ""
}

// JSON builds a JSON response with the given extra headers
func JSON(statusCode int, headers map[string]string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode: statusCode,
		Headers:    make(map[string]string, len(headers)+1),
		Body:       payload,
	}
	for key, value := range headers {
		resp.Headers[key] = value
	}
	resp.Headers["Content-Type"] = "application/json; charset=utf-8"

	return resp, nil
}

// Empty builds a response with no body, as used for CORS preflight
func Empty(statusCode int, headers map[string]string) *Response {
	resp := &Response{
		StatusCode: statusCode,
		Headers:    make(map[string]string, len(headers)),
		Body:       []byte{},
	}
	for key, value := range headers {
		resp.Headers[key] = value
	}
	return resp
}

// InternalError is the fallback response when a handler fails outright
func InternalError(headers map[string]string) events.APIGatewayProxyResponse {
	return internalError(headers, time.Now())
}

func internalError(headers map[string]string, at time.Time) events.APIGatewayProxyResponse {
	resp, err := JSON(http.StatusInternalServerError, headers,
		models.NewErrorResponse(middleware.LabelInternal, InternalErrorDetail, at))
	if err != nil {
		resp = Empty(http.StatusInternalServerError, headers)
		resp.Headers["Content-Type"] = "application/json; charset=utf-8"
		resp.Body = []byte(`{"success":false,"error":"` + middleware.LabelInternal + `","detail":"` + InternalErrorDetail +
			`","timestamp":"` + models.FormatTimestamp(at) + `"}`)
	}
	return resp.ToAPIGateway()
}
