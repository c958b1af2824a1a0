package node

import (
	"context"

	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/registry"
)

// NodeFactory creates RazorpayNode instances.
type NodeFactory struct {
	registry *registry.Registry
}

// NewNodeFactory creates a new Razorpay node factory.
func NewNodeFactory(reg *registry.Registry) *NodeFactory {
	return &NodeFactory{registry: reg}
}

// Create creates a new RazorpayNode instance.
func (f *NodeFactory) Create(ctx context.Context, id string) (*RazorpayNode, error) {
	return NewRazorpayNode(id, f.registry), nil
}

// ID returns the factory ID.
func (f *NodeFactory) ID() string {
	return "razorpay"
}

// Name returns the factory name.
func (f *NodeFactory) Name() string {
	return "Razorpay"
}

// Description returns the factory description.
func (f *NodeFactory) Description() string {
	return "Interact with the Razorpay payment gateway API"
}

// Components returns the metadata for every operation the node supports.
func (f *NodeFactory) Components() []*models.RegisteredComponent {
	return f.registry.Components()
}
