// Package models defines the shared data model for the Razorpay node:
// parameter schemas, credentials, and per-item execution results.
package models

// JSONSchema represents a JSON Schema for parameter validation.
type JSONSchema struct {
	Type        string               `json:"type"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
}

// Property represents a single JSON Schema property.
type Property struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Enum        []any                `json:"enum,omitempty"`
	Default     any                  `json:"default,omitempty"`
	Format      string               `json:"format,omitempty"`
	Minimum     *float64             `json:"minimum,omitempty"`
	Maximum     *float64             `json:"maximum,omitempty"`
	MinLength   *int                 `json:"minLength,omitempty"`
	MaxLength   *int                 `json:"maxLength,omitempty"`
	Pattern     string               `json:"pattern,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

// RegisteredComponent is the catalog entry for one registered operation.
type RegisteredComponent struct {
	Type        string      `json:"type"`
	Resource    string      `json:"resource"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Action      string      `json:"action"`
	Schema      *JSONSchema `json:"schema"`
}

// Float and Int return pointers for schema bound fields.
func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }
