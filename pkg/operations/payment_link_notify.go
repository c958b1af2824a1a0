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

// ResendPaymentLinkNotification triggers a payment link notification over
// SMS or email.
type ResendPaymentLinkNotification struct{}

func NewResendPaymentLinkNotification() *ResendPaymentLinkNotification {
	return &ResendPaymentLinkNotification{}
}

func (o *ResendPaymentLinkNotification) ID() string       { return "resendPaymentLinkNotification" }
func (o *ResendPaymentLinkNotification) Resource() string { return ResourcePaymentLink }
func (o *ResendPaymentLinkNotification) Name() string     { return "Resend Notification" }

func (o *ResendPaymentLinkNotification) Description() string {
	return "Send or resend payment link notifications via email or SMS"
}

func (o *ResendPaymentLinkNotification) Action() string {
	return "Resend a payment link notification"
}

func (o *ResendPaymentLinkNotification) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:     "object",
		Title:    "Resend Payment Link Notification",
		Required: []string{"paymentLinkId", "medium"},
		Properties: map[string]*models.Property{
			"paymentLinkId": {
				Type:        "string",
				Description: "Unique identifier of the payment link",
				Pattern:     "^plink_.+$",
			},
			"medium": {
				Type:        "string",
				Description: "Medium through which the notification is sent",
				Enum:        []any{"sms", "email"},
				Default:     "sms",
			},
		},
	}
}

func (o *ResendPaymentLinkNotification) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	paymentLinkID := stringParam(ectx, "paymentLinkId", itemIndex)
	if err := gateway.ValidatePaymentLinkID(paymentLinkID); err != nil {
		return nil, err
	}

	// Invalid mediums are rejected client-side before any request.
	medium := stringParam(ectx, "medium", itemIndex)
	if medium != "sms" && medium != "email" {
		return nil, gateway.NewValidationError(`Invalid notification medium. Must be either "sms" or "email"`)
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	path := gateway.PaymentLinksPath + "/" + paymentLinkID + "/notify_by/" + medium

	response, err := client.Post(ctx, path, nil)
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while sending the payment link notification",
			rule{
				status:  http.StatusBadRequest,
				substr:  "not a valid notification medium",
				message: fmt.Sprintf("Invalid notification medium: The medium %q is not valid. Use \"sms\" or \"email\".", medium),
			},
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

var _ protocol.Operation = (*ResendPaymentLinkNotification)(nil)
