package web

import (
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
)

// CredentialsRequest carries a Razorpay key pair in an API request body.
type CredentialsRequest struct {
	Environment string `json:"environment" validate:"omitempty,oneof=live test"`
	KeyID       string `json:"key_id"      validate:"required"`
	KeySecret   string `json:"key_secret"  validate:"required"`
}

func (r *CredentialsRequest) toModel() *models.Credentials {
	environment := models.Environment(r.Environment)
	if environment == "" {
		environment = models.EnvironmentTest
	}

	return &models.Credentials{
		Environment: environment,
		KeyID:       r.KeyID,
		KeySecret:   r.KeySecret,
	}
}

// ExecuteRequest describes one node execution: the input items and the
// credentials to run them with. Each item carries its own parameters,
// including the "operation" selector.
type ExecuteRequest struct {
	Items          []map[string]any   `json:"items"       validate:"required,min=1"`
	Credentials    CredentialsRequest `json:"credentials" validate:"required"`
	ContinueOnFail bool               `json:"continue_on_fail"`
}

// ExecuteResponse returns the output items of a node execution.
type ExecuteResponse struct {
	ExecutionID string        `json:"execution_id"`
	Items       []models.Item `json:"items"`
}

// TestCredentialsResponse reports the outcome of a credential check.
type TestCredentialsResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
