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

// FetchPaymentLink retrieves one payment link by id.
type FetchPaymentLink struct{}

func NewFetchPaymentLink() *FetchPaymentLink {
	return &FetchPaymentLink{}
}

func (o *FetchPaymentLink) ID() string       { return "fetchPaymentLink" }
func (o *FetchPaymentLink) Resource() string { return ResourcePaymentLink }
func (o *FetchPaymentLink) Name() string     { return "Fetch" }

func (o *FetchPaymentLink) Description() string {
	return "Fetch payment link details by ID"
}

func (o *FetchPaymentLink) Action() string { return "Fetch a payment link" }

func (o *FetchPaymentLink) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:     "object",
		Title:    "Fetch Payment Link",
		Required: []string{"paymentLinkId"},
		Properties: map[string]*models.Property{
			"paymentLinkId": {
				Type:        "string",
				Description: "Unique identifier of the payment link to be retrieved",
				Pattern:     "^plink_.+$",
			},
		},
	}
}

func (o *FetchPaymentLink) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	paymentLinkID := stringParam(ectx, "paymentLinkId", itemIndex)
	if err := gateway.ValidatePaymentLinkID(paymentLinkID); err != nil {
		return nil, err
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.PaymentLinksPath+"/"+paymentLinkID)
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid payment link ID or request parameters",
			"An error occurred while fetching the payment link",
			rule{
				status:  http.StatusBadRequest,
				substr:  "invalid input",
				message: fmt.Sprintf("Invalid Payment Link ID: The provided ID %q is not valid.", paymentLinkID),
			},
			rule{
				status:  http.StatusNotFound,
				message: fmt.Sprintf("Payment Link not found: The payment link ID %q does not exist or does not belong to your account.", paymentLinkID),
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchPaymentLink)(nil)
