package operations

import (
	"context"
	"fmt"
	"net/http"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// FetchInvoicesForSubscription lists the invoices generated for a subscription.
type FetchInvoicesForSubscription struct{}

func NewFetchInvoicesForSubscription() *FetchInvoicesForSubscription {
	return &FetchInvoicesForSubscription{}
}

func (o *FetchInvoicesForSubscription) ID() string       { return "fetchInvoicesForSubscription" }
func (o *FetchInvoicesForSubscription) Resource() string { return ResourceInvoice }
func (o *FetchInvoicesForSubscription) Name() string     { return "Fetch All for Subscription" }

func (o *FetchInvoicesForSubscription) Description() string {
	return "Retrieve all invoices generated for a subscription"
}

func (o *FetchInvoicesForSubscription) Action() string { return "Fetch invoices for a subscription" }

func (o *FetchInvoicesForSubscription) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Fetch Invoices for Subscription",
		Properties: map[string]*models.Property{
			"subscriptionId": {
				Type:        "string",
				Description: "Unique identifier of the subscription (starts with sub_)",
			},
		},
		Required: []string{"subscriptionId"},
	}
}

func (o *FetchInvoicesForSubscription) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	subscriptionID := stringParam(ectx, "subscriptionId", itemIndex)
	if err := gateway.ValidateSubscriptionID(subscriptionID); err != nil {
		return nil, err
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.InvoicesPath+"?subscription_id="+subscriptionID)
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid subscription ID or request parameters",
			"An error occurred while fetching invoices for the subscription",
			rule{
				status:  http.StatusNotFound,
				message: fmt.Sprintf("Subscription not found: The subscription ID %q does not exist or does not belong to your account.", subscriptionID),
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchInvoicesForSubscription)(nil)
