package opendata

import (
	"errors"
	"fmt"
	"time"
)

// MalformedResponseMessage is the client-facing detail for responses that
// lack the expected structure.
const MalformedResponseMessage = "API 응답 형식이 올바르지 않습니다"

// Client-facing details for transport failures
const (
	TimeoutMessage = "API 응답 시간 초과"
	NetworkMessage = "API 네트워크 오류"
)

// Common upstream error types
var (
	ErrUpstreamStatus    = errors.New("upstream returned non-2xx status")
	ErrMalformedResponse = errors.New(MalformedResponseMessage)
	ErrTimeout           = errors.New("upstream request timed out")
	ErrUnknownSource     = errors.New("unknown upstream source")
	ErrNetwork           = errors.New("network error")
)

// UpstreamError represents a failed upstream operation with additional context
type UpstreamError struct {
	Op         string        // Operation that failed (e.g., "fetch", "parse")
	Source     string        // Source name the operation targeted
	StatusCode int           // HTTP status, for ErrUpstreamStatus
	Status     string        // HTTP status line, for ErrUpstreamStatus
	BodyLength int           // Size of the response body, for ErrMalformedResponse
	Timeout    time.Duration // Deadline that expired, for ErrTimeout
	Err        error         // Underlying error
}

func (e *UpstreamError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUpstreamStatus):
		return fmt.Sprintf("API 호출 실패: %s", e.Status)
	case errors.Is(e.Err, ErrMalformedResponse):
		return MalformedResponseMessage
	case errors.Is(e.Err, ErrTimeout):
		if e.Timeout > 0 {
			return fmt.Sprintf("%s (%s)", TimeoutMessage, e.Timeout)
		}
		return TimeoutMessage
	case errors.Is(e.Err, ErrNetwork):
		return NetworkMessage
	default:
		return fmt.Sprintf("API 호출 실패: %s 데이터 소스 %s 단계 오류", e.Source, e.Op)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(op, source string, err error) *UpstreamError {
	return &UpstreamError{
		Op:     op,
		Source: source,
		Err:    err,
	}
}

func newStatusError(source string, statusCode int, status string) *UpstreamError {
	return &UpstreamError{
		Op:         "fetch",
		Source:     source,
		StatusCode: statusCode,
		Status:     status,
		Err:        ErrUpstreamStatus,
	}
}

func newTimeoutError(source string, timeout time.Duration) *UpstreamError {
	return &UpstreamError{
		Op:      "fetch",
		Source:  source,
		Timeout: timeout,
		Err:     ErrTimeout,
	}
}

func newMalformedError(source string, bodyLength int, cause error) *UpstreamError {
	err := ErrMalformedResponse
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedResponse, cause)
	}
	return &UpstreamError{
		Op:         "parse",
		Source:     source,
		BodyLength: bodyLength,
		Err:        err,
	}
}

// IsTimeout returns true if the error indicates the upstream call timed out
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsMalformed returns true if the upstream response lacked the expected structure
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsStatusError returns true if the upstream answered with a non-2xx status
func IsStatusError(err error) bool {
	return errors.Is(err, ErrUpstreamStatus)
}
