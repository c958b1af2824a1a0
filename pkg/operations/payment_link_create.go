package operations

import (
	"context"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// CreatePaymentLink creates a standard payment link.
type CreatePaymentLink struct{}

func NewCreatePaymentLink() *CreatePaymentLink {
	return &CreatePaymentLink{}
}

func (o *CreatePaymentLink) ID() string       { return "createPaymentLink" }
func (o *CreatePaymentLink) Resource() string { return ResourcePaymentLink }
func (o *CreatePaymentLink) Name() string     { return "Create" }

func (o *CreatePaymentLink) Description() string {
	return "Create a payment link for customers"
}

func (o *CreatePaymentLink) Action() string { return "Create a payment link" }

func (o *CreatePaymentLink) Schema() *models.JSONSchema {
	currencies := make([]any, 0, len(gateway.Currencies))
	for _, currency := range gateway.Currencies {
		currencies = append(currencies, currency)
	}

	return &models.JSONSchema{
		Type:     "object",
		Title:    "Create Payment Link",
		Required: []string{"amount", "currency"},
		Properties: map[string]*models.Property{
			"amount": {
				Type:        "number",
				Description: "Amount to be paid using the Payment Link, in the smallest unit of the currency (paise for INR). For ₹1000, enter 100000.",
				Default:     gateway.DefaultPaymentLinkAmount,
				Minimum:     models.Float(gateway.MinAmount),
			},
			"currency": {
				Type:        "string",
				Description: "ISO code for the currency",
				Enum:        currencies,
				Default:     gateway.DefaultCurrency,
			},
			"description": {
				Type:        "string",
				Description: "A brief description of the Payment Link. Maximum 2048 characters.",
				MaxLength:   models.Int(gateway.MaxDescriptionLength),
			},
			"reference_id": {
				Type:        "string",
				Description: "Reference number tagged to a Payment Link. Must be unique for each Payment Link. Maximum 40 characters.",
				MaxLength:   models.Int(gateway.MaxReferenceIDLength),
			},
			"customerDetails": {
				Type:        "object",
				Description: "Customer the link is addressed to",
				Properties: map[string]*models.Property{
					"name":    {Type: "string", Description: "Name of the customer"},
					"email":   {Type: "string", Description: "Email address of the customer"},
					"contact": {Type: "string", Description: "Phone number of the customer"},
				},
			},
			"additionalOptions": {
				Type:        "object",
				Description: "Optional payment link settings",
				Properties: map[string]*models.Property{
					"accept_partial": {
						Type:        "boolean",
						Description: "Whether customers can make partial payments using the Payment Link",
						Default:     false,
					},
					"first_min_partial_amount": {
						Type:        "number",
						Description: "Minimum amount that must be paid as the first partial payment. Only sent when accept_partial is enabled.",
						Default:     gateway.DefaultFirstMinPartialAmount,
					},
					"expire_by": {
						Type:        "string",
						Format:      "date-time",
						Description: "Timestamp at which the Payment Link will expire. By default, valid for six months from creation.",
					},
					"notify_sms": {
						Type:        "boolean",
						Description: "Whether to send SMS notification to customer",
						Default:     true,
					},
					"notify_email": {
						Type:        "boolean",
						Description: "Whether to send email notification to customer",
						Default:     true,
					},
					"reminder_enable": {
						Type:        "boolean",
						Description: "Whether to send reminders for the Payment Link",
						Default:     true,
					},
					"callback_url": {
						Type:        "string",
						Description: "Redirect URL after payment completion. Must be a valid URL format.",
					},
					"callback_method": {
						Type:        "string",
						Description: `HTTP method for callback. Must be "get" if callback_url is provided.`,
						Enum:        []any{"get"},
						Default:     gateway.DefaultCallbackMethod,
					},
					"notes": {
						Type:        "object",
						Description: "Key-value pairs for additional information. Maximum 15 pairs, 256 characters each.",
					},
				},
			},
		},
	}
}

func (o *CreatePaymentLink) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	amount, _ := intValue(ectx.Parameter("amount", itemIndex, nil))
	currency := stringParam(ectx, "currency", itemIndex)
	description, _ := ectx.Parameter("description", itemIndex, "").(string)
	referenceID := stringParam(ectx, "reference_id", itemIndex)
	customer := collectionParam(ectx, "customerDetails", itemIndex)
	opts := collectionParam(ectx, "additionalOptions", itemIndex)

	if err := gateway.ValidateAmount(amount); err != nil {
		return nil, err
	}

	if err := gateway.ValidateDescription(description); err != nil {
		return nil, err
	}

	if err := gateway.ValidateReferenceID(referenceID); err != nil {
		return nil, err
	}

	body := map[string]any{
		"amount":   amount,
		"currency": currency,
	}

	if description != "" {
		body["description"] = description
	}

	if referenceID != "" {
		body["reference_id"] = referenceID
	}

	// The customer object is omitted entirely unless at least one
	// sub-field is present.
	if customerBody := buildCustomer(customer); len(customerBody) > 0 {
		body["customer"] = customerBody
	}

	if acceptPartial, ok := optBool(opts, "accept_partial"); ok {
		body["accept_partial"] = acceptPartial

		if acceptPartial {
			if minPartial, ok := optInt(opts, "first_min_partial_amount"); ok && minPartial > 0 {
				body["first_min_partial_amount"] = minPartial
			}
		}
	}

	if expireBy, ok := unixFromDate(opts["expire_by"]); ok {
		body["expire_by"] = expireBy
	}

	notifySMS, hasSMS := optBool(opts, "notify_sms")
	notifyEmail, hasEmail := optBool(opts, "notify_email")

	if hasSMS || hasEmail {
		notify := map[string]any{}

		if hasSMS {
			notify["sms"] = notifySMS
		}

		if hasEmail {
			notify["email"] = notifyEmail
		}

		body["notify"] = notify
	}

	if reminder, ok := optBool(opts, "reminder_enable"); ok {
		body["reminder_enable"] = reminder
	}

	if callbackURL := optString(opts, "callback_url"); callbackURL != "" {
		if err := gateway.ValidateURL(callbackURL); err != nil {
			return nil, err
		}

		body["callback_url"] = callbackURL

		method := optString(opts, "callback_method")
		if method == "" {
			method = gateway.DefaultCallbackMethod
		}

		body["callback_method"] = method
	}

	if pairs := notePairsFrom(opts["notes"]); len(pairs) > 0 {
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

	response, err := client.Post(ctx, gateway.PaymentLinksPath, body)
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while creating the payment link",
		)
	}

	if respAmount, ok := intValue(response["amount"]); ok {
		response["amount_formatted"] = gateway.FormatAmount(respAmount, currency)
	}

	if createdAt, ok := intValue(response["created_at"]); ok {
		response["created_at_formatted"] = gateway.FormatTimestamp(createdAt)
	}

	if expireBy, ok := intValue(response["expire_by"]); ok && expireBy > 0 {
		response["expire_by_formatted"] = gateway.FormatTimestamp(expireBy)
	} else {
		response["expire_by_formatted"] = nil
	}

	response["api_info"] = models.APIInfo{
		Endpoint:      "POST /v1/payment_links",
		Documentation: gateway.DocCreatePaymentLink,
		Timestamp:     gateway.CurrentTimestamp(),
	}

	return response, nil
}

func buildCustomer(customer map[string]any) map[string]any {
	body := map[string]any{}

	for _, field := range []string{"name", "email", "contact"} {
		if value := optString(customer, field); value != "" {
			body[field] = value
		}
	}

	return body
}

var _ protocol.Operation = (*CreatePaymentLink)(nil)
