package protocol

import (
	"context"
	"net/http"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
)

// CredentialType declares a credential schema, an authentication strategy
// applied to outbound requests, and a connectivity self-test the host can
// run when a credential entry is saved.
type CredentialType interface {
	// Name returns the credential type identifier, e.g. "razorpayApi".
	Name() string

	// Schema returns the JSON schema for the credential fields.
	Schema() *models.JSONSchema

	// Authenticate attaches the credential to an outbound request.
	Authenticate(creds *models.Credentials, req *http.Request) error

	// Test performs a connectivity check using the given transport.
	Test(ctx context.Context, doer Doer, creds *models.Credentials) error
}
