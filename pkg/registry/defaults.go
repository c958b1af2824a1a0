// Package registry provides operation registration for the node dispatcher.
package registry

import (
	"github.com/razorpay/razorpay-workflow-node/pkg/operations"
)

// RegisterDefaultOperations registers every built-in operation.
func (r *Registry) RegisterDefaultOperations() {
	// Order resource
	r.RegisterOperation(operations.NewFetchAllOrders())

	// Payment Link resource
	r.RegisterOperation(operations.NewCreatePaymentLink())
	r.RegisterOperation(operations.NewFetchPaymentLink())
	r.RegisterOperation(operations.NewResendPaymentLinkNotification())

	// Payment resource
	r.RegisterOperation(operations.NewFetchPayment())
	r.RegisterOperation(operations.NewFetchAllPayments())

	// Refund resource
	r.RegisterOperation(operations.NewCreateRefund())
	r.RegisterOperation(operations.NewFetchAllRefunds())

	// Settlement resource
	r.RegisterOperation(operations.NewFetchSettlement())
	r.RegisterOperation(operations.NewFetchAllSettlements())

	// Invoice resource
	r.RegisterOperation(operations.NewFetchInvoicesForSubscription())

	// Dispute resource
	r.RegisterOperation(operations.NewFetchAllDisputes())
}
