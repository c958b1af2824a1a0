package gateway

import (
	"errors"
	"fmt"
)

// ValidationError is raised before any network call when a client-side
// constraint is violated. The message is fixed and user-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError

	return errors.As(err, &verr)
}

// MalformedIDError is raised when an identifier parameter fails its
// required prefix pattern. Client-side, fatal, never retried.
type MalformedIDError struct {
	Message string
}

func (e *MalformedIDError) Error() string {
	return e.Message
}

// IsMalformedIDError reports whether err carries a MalformedIDError.
func IsMalformedIDError(err error) bool {
	var merr *MalformedIDError

	return errors.As(err, &merr)
}

// GatewayError is an HTTP 4xx/5xx answer from Razorpay, carrying the
// decoded error code and description when the body was parseable.
type GatewayError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay error [%s]: %s (status: %d)", e.Code, e.Description, e.StatusCode)
}

// AsGatewayError unwraps err into a GatewayError when possible.
func AsGatewayError(err error) (*GatewayError, bool) {
	var gerr *GatewayError
	ok := errors.As(err, &gerr)

	return gerr, ok
}

// errorResponse is Razorpay's error body envelope.
type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}
