package models

// Environment selects the Razorpay key environment.
type Environment string

const (
	EnvironmentLive Environment = "live"
	EnvironmentTest Environment = "test"
)

// Credentials holds one Razorpay API key pair. The host owns storage and
// encryption; this module only reads the fields to build Basic auth.
type Credentials struct {
	Environment Environment `json:"environment" validate:"omitempty,oneof=live test"`
	KeyID       string      `json:"key_id"      validate:"required"`
	KeySecret   string      `json:"key_secret"  validate:"required"`
}
