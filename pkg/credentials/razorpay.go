// Package credentials provides the Razorpay API credential type.
package credentials

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

var validate = validator.New()

// RazorpayAPI implements the "razorpayApi" credential type. It authenticates
// requests with HTTP Basic auth using the key id and key secret.
type RazorpayAPI struct{}

func NewRazorpayAPI() *RazorpayAPI {
	return &RazorpayAPI{}
}

func (c *RazorpayAPI) Name() string {
	return "razorpayApi"
}

func (c *RazorpayAPI) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Razorpay API",
		Properties: map[string]*models.Property{
			"environment": {
				Type:        "string",
				Description: "The environment the key pair belongs to",
				Enum:        []any{"live", "test"},
				Default:     "test",
			},
			"keyId": {
				Type:        "string",
				Description: "API key ID from the Razorpay dashboard",
			},
			"keySecret": {
				Type:        "string",
				Description: "API key secret from the Razorpay dashboard",
			},
		},
		Required: []string{"keyId", "keySecret"},
	}
}

// Authenticate attaches the key pair to the request as HTTP Basic auth.
func (c *RazorpayAPI) Authenticate(creds *models.Credentials, req *http.Request) error {
	if err := validate.Struct(creds); err != nil {
		return fmt.Errorf("invalid razorpay credentials: %w", err)
	}

	req.SetBasicAuth(creds.KeyID, creds.KeySecret)

	return nil
}

// Test verifies the key pair by fetching a single order. A 401 response
// surfaces as a gateway error with the unauthorized code.
func (c *RazorpayAPI) Test(ctx context.Context, doer protocol.Doer, creds *models.Credentials) error {
	if err := validate.Struct(creds); err != nil {
		return fmt.Errorf("invalid razorpay credentials: %w", err)
	}

	client := gateway.NewClient(creds, gateway.WithDoer(doer))

	if _, err := client.Get(ctx, gateway.OrdersPath+"?count=1"); err != nil {
		if gatewayErr, ok := gateway.AsGatewayError(err); ok && gatewayErr.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%s", gateway.MsgUnauthorized)
		}

		return fmt.Errorf("credential test failed: %w", err)
	}

	return nil
}

var _ protocol.CredentialType = (*RazorpayAPI)(nil)
