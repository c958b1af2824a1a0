package operations

import (
	"context"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// CreateRefund refunds a captured payment, fully or partially.
type CreateRefund struct{}

func NewCreateRefund() *CreateRefund {
	return &CreateRefund{}
}

func (o *CreateRefund) ID() string       { return "createRefund" }
func (o *CreateRefund) Resource() string { return ResourceRefund }
func (o *CreateRefund) Name() string     { return "Create" }

func (o *CreateRefund) Description() string {
	return "Create a refund for a payment"
}

func (o *CreateRefund) Action() string { return "Create a refund" }

func (o *CreateRefund) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:     "object",
		Title:    "Create Refund",
		Required: []string{"paymentId"},
		Properties: map[string]*models.Property{
			"paymentId": {
				Type:        "string",
				Description: `The unique identifier of the payment which needs to be refunded. Must start with "pay_".`,
				Pattern:     "^pay_[A-Za-z0-9]{10,}$",
			},
			"amount": {
				Type:        "number",
				Description: "Refund amount in smallest currency sub-unit (paise for INR). Leave empty to refund full amount.",
				Default:     gateway.DefaultRefundAmount,
			},
			"receipt": {
				Type:        "string",
				Description: "A unique identifier provided by you for your internal reference. Max 40 characters.",
				MaxLength:   models.Int(gateway.MaxReceiptLength),
			},
			"additionalFields": {
				Type:        "object",
				Description: "Optional refund fields",
				Properties: map[string]*models.Property{
					"notes": {
						Type:        "object",
						Description: "Key-value pairs for storing additional information. Maximum 15 pairs allowed.",
					},
				},
			},
		},
	}
}

func (o *CreateRefund) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	paymentID := stringParam(ectx, "paymentId", itemIndex)
	amount, hasAmount := intValue(ectx.Parameter("amount", itemIndex, nil))
	receipt := stringParam(ectx, "receipt", itemIndex)
	fields := collectionParam(ectx, "additionalFields", itemIndex)

	if err := gateway.ValidatePaymentID(paymentID); err != nil {
		return nil, err
	}

	if hasAmount && amount > 0 {
		if err := gateway.ValidateRefundAmount(amount); err != nil {
			return nil, err
		}
	}

	if err := gateway.ValidateReceipt(receipt); err != nil {
		return nil, err
	}

	body := map[string]any{}

	// An absent or non-positive amount means a full refund; the field is
	// left out of the body entirely.
	if hasAmount && amount > 0 {
		body["amount"] = amount
	}

	if receipt != "" {
		body["receipt"] = receipt
	}

	if pairs := notePairsFrom(fields["notes"]); len(pairs) > 0 {
		notes, err := gateway.BuildNotes(pairs)
		if err != nil {
			return nil, err
		}

		if len(notes) > 0 {
			body["notes"] = notes
		}
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	path := gateway.PaymentsPath + "/" + paymentID + "/refund"

	response, err := client.Post(ctx, path, body)
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while creating the refund",
		)
	}

	currency := optString(response, "currency")
	if currency == "" {
		currency = gateway.DefaultCurrency
	}

	if respAmount, ok := intValue(response["amount"]); ok {
		response["amount_formatted"] = gateway.FormatAmount(respAmount, currency)
	}

	if createdAt, ok := intValue(response["created_at"]); ok {
		response["created_at_formatted"] = gateway.FormatTimestamp(createdAt)
	}

	response["api_info"] = models.APIInfo{
		Endpoint:      "POST /v1/payments/" + paymentID + "/refund",
		Documentation: gateway.DocCreateRefund,
		Timestamp:     gateway.CurrentTimestamp(),
	}

	return response, nil
}

var _ protocol.Operation = (*CreateRefund)(nil)
