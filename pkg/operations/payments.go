package operations

import (
	"context"
	"net/http"
	"strconv"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// FetchAllPayments lists payments within an optional date range.
type FetchAllPayments struct{}

func NewFetchAllPayments() *FetchAllPayments {
	return &FetchAllPayments{}
}

func (o *FetchAllPayments) ID() string       { return "fetchAllPayments" }
func (o *FetchAllPayments) Resource() string { return ResourcePayment }
func (o *FetchAllPayments) Name() string     { return "Fetch All" }

func (o *FetchAllPayments) Description() string {
	return "Retrieve details of all payments with optional filters"
}

func (o *FetchAllPayments) Action() string { return "Fetch all payments" }

func (o *FetchAllPayments) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Fetch All Payments",
		Properties: map[string]*models.Property{
			"additionalOptions": {
				Type:        "object",
				Description: "Optional filters for the payment listing",
				Properties: map[string]*models.Property{
					"from": {
						Type:        "string",
						Format:      "date-time",
						Description: "Start date to fetch payments from",
					},
					"to": {
						Type:        "string",
						Format:      "date-time",
						Description: "End date to fetch payments until",
					},
					"count": {
						Type:        "number",
						Description: "Number of payments to fetch (1-100, default: 10)",
						Default:     gateway.DefaultCount,
						Minimum:     models.Float(gateway.MinCount),
						Maximum:     models.Float(gateway.MaxCount),
					},
					"skip": {
						Type:        "number",
						Description: "Number of payments to skip for pagination (default: 0)",
						Default:     0,
						Minimum:     models.Float(0),
					},
				},
			},
		},
	}
}

func (o *FetchAllPayments) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	opts := collectionParam(ectx, "additionalOptions", itemIndex)

	var terms []string

	if from, ok := unixFromDate(opts["from"]); ok {
		terms = append(terms, "from="+strconv.FormatInt(from, 10))
	}

	if to, ok := unixFromDate(opts["to"]); ok {
		terms = append(terms, "to="+strconv.FormatInt(to, 10))
	}

	if count, ok := optInt(opts, "count"); ok {
		terms = append(terms, "count="+strconv.FormatInt(count, 10))
	}

	if skip, ok := optInt(opts, "skip"); ok {
		terms = append(terms, "skip="+strconv.FormatInt(skip, 10))
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.PaymentsPath+buildQuery(terms))
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while fetching payments",
			rule{
				status:  http.StatusBadRequest,
				substr:  "from must be between",
				message: "Invalid date range: The time range entered is invalid. Please check the from and to dates.",
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchAllPayments)(nil)
