package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PageRequest is a bounded range [StartIndex, EndIndex] into the upstream
// dataset plus optional filters.
type PageRequest struct {
	StartIndex int    `json:"startIdx" validate:"min=1"`
	EndIndex   int    `json:"endIdx" validate:"gtefield=StartIndex"`
	District   string `json:"dong,omitempty" validate:"max=100"`
	Category   string `json:"category,omitempty" validate:"max=100"`
	City       string `json:"city,omitempty" validate:"max=100"`
	Source     string `json:"source,omitempty"`
}

// Size returns the number of rows the request asks for
func (p PageRequest) Size() int {
	return p.EndIndex - p.StartIndex + 1
}

// Validate checks the field rules and that the page does not exceed maxPageSize
func (p PageRequest) Validate(maxPageSize int) error {
	if err := validate.Struct(p); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return fieldValidationError(validationErrors[0])
		}
		return &ValidationError{Message: err.Error()}
	}

	if size := p.Size(); size > maxPageSize {
		return &ValidationError{
			Field:     "endIdx",
			Message:   fmt.Sprintf("요청 가능한 최대 건수를 초과했습니다 (최대 %d건, 요청 %d건)", maxPageSize, size),
			Limit:     maxPageSize,
			Requested: size,
		}
	}

	return nil
}

func fieldValidationError(fe validator.FieldError) *ValidationError {
	var field, message string
	switch fe.Field() {
	case "StartIndex":
		field = "startIdx"
		message = "startIdx는 1 이상의 정수여야 합니다"
	case "EndIndex":
		field = "endIdx"
		message = "endIdx는 startIdx 이상이어야 합니다"
	case "District":
		field = "dong"
		message = fmt.Sprintf("dong은 최대 %s자까지 허용됩니다", fe.Param())
	default:
		field = fe.Field()
		message = fmt.Sprintf("%s 값이 올바르지 않습니다", fe.Field())
	}
	return &ValidationError{Field: field, Message: message}
}

// ValidationError reports a request rejected before any upstream call
type ValidationError struct {
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	Limit     int    `json:"limit,omitempty"`
	Requested int    `json:"requested,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
