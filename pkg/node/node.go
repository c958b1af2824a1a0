// Package node provides the Razorpay node implementation for workflow execution.
package node

import (
	"context"
	"fmt"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
	"github.com/razorpay/razorpay-workflow-node/pkg/registry"
)

// RazorpayNode dispatches each input item to the operation named by its
// "operation" parameter. Items run sequentially in input order.
type RazorpayNode struct {
	id       string
	registry *registry.Registry
}

// NewRazorpayNode creates a new Razorpay node backed by the given operation
// registry.
func NewRazorpayNode(id string, reg *registry.Registry) *RazorpayNode {
	return &RazorpayNode{
		id:       id,
		registry: reg,
	}
}

func (n *RazorpayNode) ID() string {
	return n.id
}

// Execute runs the configured operation once per input item. When the
// execution context reports continue-on-fail, a failed item produces an
// error item and the remaining items still run; otherwise the first failure
// aborts the whole execution.
func (n *RazorpayNode) Execute(ctx context.Context, ectx protocol.ExecutionContext) ([]models.Item, error) {
	logger := log.WithModule("node").With("node_id", n.id)

	items := make([]models.Item, 0, ectx.InputCount())

	for i := 0; i < ectx.InputCount(); i++ {
		operationID, _ := ectx.Parameter("operation", i, "").(string)

		result, err := n.executeItem(ctx, ectx, operationID, i)
		if err != nil {
			if !ectx.ContinueOnFail() {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			logger.Warn("Operation failed, continuing with next item",
				"operation", operationID, "item_index", i, "error", err)

			items = append(items, models.Item{
				JSON: map[string]any{
					"error":     err.Error(),
					"operation": operationID,
					"timestamp": gateway.CurrentTimestamp(),
				},
				PairedItem: i,
				Status:     models.ItemStatusError,
			})

			continue
		}

		items = append(items, models.Item{
			JSON:       result,
			PairedItem: i,
			Status:     models.ItemStatusSuccess,
		})
	}

	return items, nil
}

func (n *RazorpayNode) executeItem(ctx context.Context, ectx protocol.ExecutionContext, operationID string, itemIndex int) (map[string]any, error) {
	if operationID == "" {
		return nil, fmt.Errorf("missing 'operation' parameter for item %d", itemIndex)
	}

	operation, err := n.registry.Operation(operationID)
	if err != nil {
		return nil, err
	}

	return operation.Execute(ctx, ectx, itemIndex)
}
