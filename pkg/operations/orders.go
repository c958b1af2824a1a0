package operations

import (
	"context"
	"net/url"
	"strconv"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// FetchAllOrders lists orders with optional filters.
type FetchAllOrders struct{}

func NewFetchAllOrders() *FetchAllOrders {
	return &FetchAllOrders{}
}

func (o *FetchAllOrders) ID() string       { return "fetchAllOrders" }
func (o *FetchAllOrders) Resource() string { return ResourceOrder }
func (o *FetchAllOrders) Name() string     { return "Fetch All" }

func (o *FetchAllOrders) Description() string {
	return "Retrieve details of all orders with optional filters"
}

func (o *FetchAllOrders) Action() string { return "Fetch all orders" }

func (o *FetchAllOrders) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Fetch All Orders",
		Properties: map[string]*models.Property{
			"additionalOptions": {
				Type:        "object",
				Description: "Optional filters for the order listing",
				Properties: map[string]*models.Property{
					"authorized": {
						Type:        "string",
						Description: "Filter orders by payment authorization status",
						Enum:        []any{"", 1, 0},
						Default:     "",
					},
					"receipt": {
						Type:        "string",
						Description: "Filter orders by receipt number",
					},
					"from": {
						Type:        "string",
						Format:      "date-time",
						Description: "Start date to fetch orders from",
					},
					"to": {
						Type:        "string",
						Format:      "date-time",
						Description: "End date to fetch orders until",
					},
					"count": {
						Type:        "number",
						Description: "Number of orders to fetch (1-100, default: 10)",
						Default:     gateway.DefaultCount,
						Minimum:     models.Float(gateway.MinCount),
						Maximum:     models.Float(gateway.MaxCount),
					},
					"skip": {
						Type:        "number",
						Description: "Number of orders to skip for pagination (default: 0)",
						Default:     0,
						Minimum:     models.Float(0),
					},
					"expand": {
						Type:        "array",
						Description: "Additional information to include in the response",
						Items: &models.Property{
							Type: "string",
							Enum: []any{"payments", "payments.card"},
						},
					},
				},
			},
		},
	}
}

func (o *FetchAllOrders) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	opts := collectionParam(ectx, "additionalOptions", itemIndex)

	var terms []string

	// The empty authorization filter means "all orders" and is omitted
	// from the query entirely, never sent as an empty string.
	if authorized, ok := optInt(opts, "authorized"); ok {
		terms = append(terms, "authorized="+strconv.FormatInt(authorized, 10))
	}

	if receipt := optString(opts, "receipt"); receipt != "" {
		terms = append(terms, "receipt="+url.QueryEscape(receipt))
	}

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

	for _, expand := range stringList(opts["expand"]) {
		terms = append(terms, "expand[]="+expand)
	}

	response, err := client.Get(ctx, gateway.OrdersPath+buildQuery(terms))
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while fetching orders",
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchAllOrders)(nil)
