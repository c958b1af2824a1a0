package protocol

import (
	"context"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
)

// Operation is one resource+operation pair the node supports. Operations
// are state-free: all per-invocation data comes from the ExecutionContext.
type Operation interface {
	// ID returns the unique operation identifier, e.g. "createPaymentLink".
	ID() string

	// Resource returns the domain entity the operation acts on.
	Resource() string

	// Name returns the human-readable operation name.
	Name() string

	// Description returns a description of what this operation does.
	Description() string

	// Action returns the short action phrase for catalog listings.
	Action() string

	// Schema returns the JSON schema for the operation's parameters.
	Schema() *models.JSONSchema

	// Execute reads parameters for itemIndex, validates them, issues one
	// authenticated request, and returns the decoded response object.
	Execute(ctx context.Context, ectx ExecutionContext, itemIndex int) (map[string]any, error)
}
