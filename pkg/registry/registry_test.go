package registry

import (
	"context"
	"testing"

	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

type mockOperation struct {
	id string
}

func (m *mockOperation) ID() string          { return m.id }
func (m *mockOperation) Resource() string    { return "mock" }
func (m *mockOperation) Name() string        { return "Mock" }
func (m *mockOperation) Description() string { return "Mock operation" }
func (m *mockOperation) Action() string      { return "Mock" }

func (m *mockOperation) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type: "object",
		Properties: map[string]*models.Property{
			"amount": {Type: "number"},
		},
		Required: []string{"amount"},
	}
}

func (m *mockOperation) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	return map[string]any{"ok": true}, nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry(log.WithModule("test"))
	reg.RegisterOperation(&mockOperation{id: "mockOp"})

	operation, err := reg.Operation("mockOp")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if operation.ID() != "mockOp" {
		t.Errorf("Unexpected operation id: %s", operation.ID())
	}

	if _, err := reg.Operation("missing"); err == nil {
		t.Error("Expected error for unregistered operation")
	}
}

func TestRegistry_DefaultOperations(t *testing.T) {
	reg := NewRegistry(log.WithModule("test"))
	reg.RegisterDefaultOperations()

	ops := reg.Operations()
	if len(ops) != 12 {
		t.Fatalf("Expected 12 operations, got: %d", len(ops))
	}

	// Registration order is stable
	if ops[0].ID() != "fetchAllOrders" {
		t.Errorf("Expected fetchAllOrders first, got: %s", ops[0].ID())
	}

	if ops[len(ops)-1].ID() != "fetchAllDisputes" {
		t.Errorf("Expected fetchAllDisputes last, got: %s", ops[len(ops)-1].ID())
	}

	components := reg.Components()
	if len(components) != 12 {
		t.Fatalf("Expected 12 components, got: %d", len(components))
	}

	for _, component := range components {
		if component.Schema == nil {
			t.Errorf("Expected a schema for %s", component.Type)
		}

		if component.Resource == "" {
			t.Errorf("Expected a resource for %s", component.Type)
		}
	}
}

func TestRegistry_ValidateParameters(t *testing.T) {
	reg := NewRegistry(log.WithModule("test"))
	reg.RegisterOperation(&mockOperation{id: "mockOp"})

	if err := reg.ValidateParameters("mockOp", map[string]any{"amount": 100}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := reg.ValidateParameters("mockOp", map[string]any{}); err == nil {
		t.Error("Expected error for missing required parameter")
	}

	if err := reg.ValidateParameters("mockOp", map[string]any{"amount": "not-a-number"}); err == nil {
		t.Error("Expected error for wrong parameter type")
	}
}
