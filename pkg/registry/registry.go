package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// Registry indexes the operations the node can dispatch to. Registration
// order is preserved so component listings are stable.
type Registry struct {
	logger     *slog.Logger
	operations map[string]protocol.Operation
	order      []string
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:     logger,
		operations: make(map[string]protocol.Operation),
	}
}

func (r *Registry) RegisterOperation(operation protocol.Operation) {
	if _, exists := r.operations[operation.ID()]; !exists {
		r.order = append(r.order, operation.ID())
	}

	r.operations[operation.ID()] = operation
}

func (r *Registry) Operation(operationID string) (protocol.Operation, error) {
	operation, ok := r.operations[operationID]
	if !ok {
		return nil, fmt.Errorf("operation '%s' not registered", operationID)
	}

	return operation, nil
}

func (r *Registry) Operations() []protocol.Operation {
	operations := make([]protocol.Operation, 0, len(r.order))
	for _, id := range r.order {
		operations = append(operations, r.operations[id])
	}

	return operations
}

// Components returns the metadata a workflow host needs to present each
// operation in its editor.
func (r *Registry) Components() []*models.RegisteredComponent {
	components := make([]*models.RegisteredComponent, 0, len(r.order))

	for _, operation := range r.Operations() {
		components = append(components, &models.RegisteredComponent{
			Type:        operation.ID(),
			Resource:    operation.Resource(),
			Name:        operation.Name(),
			Description: operation.Description(),
			Action:      operation.Action(),
			Schema:      operation.Schema(),
		})
	}

	return components
}

// ValidateParameters checks operation parameters against the operation's
// JSON schema before execution.
func (r *Registry) ValidateParameters(operationID string, parameters map[string]any) error {
	operation, err := r.Operation(operationID)
	if err != nil {
		return err
	}

	schema := operation.Schema()
	if schema == nil {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	dataLoader := gojsonschema.NewGoLoader(parameters)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("failed to validate parameters for '%s': %w", operationID, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resultError := range result.Errors() {
			details = append(details, resultError.String())
		}

		return fmt.Errorf("invalid parameters for '%s': %s", operationID, strings.Join(details, "; "))
	}

	return nil
}
