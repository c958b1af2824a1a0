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

// FetchPayment retrieves one payment, optionally expanding card, EMI,
// offer, and UPI details.
type FetchPayment struct{}

func NewFetchPayment() *FetchPayment {
	return &FetchPayment{}
}

func (o *FetchPayment) ID() string       { return "fetchPayment" }
func (o *FetchPayment) Resource() string { return ResourcePayment }
func (o *FetchPayment) Name() string     { return "Fetch Payment" }

func (o *FetchPayment) Description() string {
	return "Fetch payment details by payment ID"
}

func (o *FetchPayment) Action() string { return "Fetch a payment" }

func (o *FetchPayment) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:     "object",
		Title:    "Fetch Payment",
		Required: []string{"paymentId"},
		Properties: map[string]*models.Property{
			"paymentId": {
				Type:        "string",
				Description: "Unique identifier of the payment to be retrieved",
				Pattern:     "^pay_.+$",
			},
			"additionalOptions": {
				Type:        "object",
				Description: "Response expansion flags",
				Properties: map[string]*models.Property{
					"expand_card": {
						Type:        "boolean",
						Description: "Whether to expand card details in the response",
						Default:     false,
					},
					"expand_emi": {
						Type:        "boolean",
						Description: "Whether to expand EMI details in the response",
						Default:     false,
					},
					"expand_offers": {
						Type:        "boolean",
						Description: "Whether to expand offer details in the response",
						Default:     false,
					},
					"expand_upi": {
						Type:        "boolean",
						Description: "Whether to expand UPI details in the response",
						Default:     false,
					},
				},
			},
		},
	}
}

func (o *FetchPayment) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	paymentID := stringParam(ectx, "paymentId", itemIndex)
	if err := gateway.ValidatePaymentIDPrefix(paymentID); err != nil {
		return nil, err
	}

	opts := collectionParam(ectx, "additionalOptions", itemIndex)

	var terms []string

	// Each enabled flag contributes one expand[] entry, in a fixed order.
	expansions := []struct {
		flag   string
		target string
	}{
		{"expand_card", "card"},
		{"expand_emi", "emi"},
		{"expand_offers", "offers"},
		{"expand_upi", "upi"},
	}

	for _, expansion := range expansions {
		if enabled, _ := optBool(opts, expansion.flag); enabled {
			terms = append(terms, "expand[]="+expansion.target)
		}
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.PaymentsPath+"/"+paymentID+buildQuery(terms))
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid payment ID or request parameters",
			"An error occurred while fetching the payment",
			rule{
				status:  http.StatusNotFound,
				message: fmt.Sprintf("Payment not found: The payment ID %q does not exist.", paymentID),
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchPayment)(nil)
