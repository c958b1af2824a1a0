// Package protocol defines the interfaces and contracts between the
// Razorpay node and its workflow host.
package protocol

import (
	"context"
	"net/http"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
)

// Doer issues a single HTTP request using the host's transport. The host
// decides timeouts and connection pooling; this module never retries.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ExecutionContext is the capability surface the host supplies for one
// node execution: declared parameter reads, credential lookup, and the
// outbound HTTP transport.
type ExecutionContext interface {
	// Parameter returns the declared parameter value for the given input
	// item, or fallback when the parameter was not set.
	Parameter(name string, itemIndex int, fallback any) any

	// Credentials resolves a named credential entry.
	Credentials(ctx context.Context, name string) (*models.Credentials, error)

	// HTTPDoer returns the host's HTTP transport.
	HTTPDoer() Doer

	// InputCount reports how many input items this execution carries.
	InputCount() int

	// ContinueOnFail reports whether a failed item should become a
	// structured error item instead of aborting the run.
	ContinueOnFail() bool
}
