package operations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
)

// OperationError carries the user-facing message for one failed
// operation, wrapping the underlying gateway or transport error.
type OperationError struct {
	Operation string
	Message   string
	Err       error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// AsOperationError unwraps err into an OperationError when possible.
func AsOperationError(err error) (*OperationError, bool) {
	var oerr *OperationError
	ok := errors.As(err, &oerr)

	return oerr, ok
}

// rule matches a gateway status (and optionally an error-description
// substring) to a fixed user-facing message.
type rule struct {
	status  int
	substr  string
	message string
}

// translateError normalizes a failed call into an OperationError.
// Specific rules run first; then 400 becomes "Bad Request: <description>"
// (badRequestDetail when the body had none), 401 the fixed credentials
// message, and anything else falls back to the description, the transport
// error text, and finally the per-operation fallback string.
func translateError(operation string, err error, badRequestDetail, fallback string, rules ...rule) error {
	gerr, ok := gateway.AsGatewayError(err)
	if !ok {
		message := err.Error()
		if message == "" {
			message = fallback
		}

		return &OperationError{Operation: operation, Message: message, Err: err}
	}

	for _, r := range rules {
		if r.status != gerr.StatusCode {
			continue
		}

		if r.substr != "" && !strings.Contains(gerr.Description, r.substr) {
			continue
		}

		return &OperationError{Operation: operation, Message: r.message, Err: gerr}
	}

	switch gerr.StatusCode {
	case http.StatusBadRequest:
		detail := gerr.Description
		if detail == "" {
			detail = badRequestDetail
		}

		return &OperationError{Operation: operation, Message: "Bad Request: " + detail, Err: gerr}
	case http.StatusUnauthorized:
		return &OperationError{Operation: operation, Message: gateway.MsgUnauthorized, Err: gerr}
	}

	if gerr.Description != "" {
		return &OperationError{Operation: operation, Message: gerr.Description, Err: gerr}
	}

	return &OperationError{Operation: operation, Message: fallback, Err: gerr}
}
