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

// FetchAllRefunds lists refunds. Unlike the order and payment listings,
// from/to here are raw Unix seconds with no date conversion.
type FetchAllRefunds struct{}

func NewFetchAllRefunds() *FetchAllRefunds {
	return &FetchAllRefunds{}
}

func (o *FetchAllRefunds) ID() string       { return "fetchAllRefunds" }
func (o *FetchAllRefunds) Resource() string { return ResourceRefund }
func (o *FetchAllRefunds) Name() string     { return "Fetch All" }

func (o *FetchAllRefunds) Description() string {
	return "Retrieve details of all refunds with optional filters"
}

func (o *FetchAllRefunds) Action() string { return "Fetch all refunds" }

func (o *FetchAllRefunds) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Fetch All Refunds",
		Properties: map[string]*models.Property{
			"additionalOptions": {
				Type:        "object",
				Description: "Optional filters for the refund listing",
				Properties: map[string]*models.Property{
					"from": {
						Type:        "number",
						Description: "Unix timestamp at which the refunds were created",
					},
					"to": {
						Type:        "number",
						Description: "Unix timestamp till which the refunds were created",
					},
					"count": {
						Type:        "number",
						Description: "Number of refunds to fetch (1 to 100)",
						Default:     gateway.DefaultCount,
						Minimum:     models.Float(gateway.MinCount),
						Maximum:     models.Float(gateway.MaxCount),
					},
					"skip": {
						Type:        "number",
						Description: "Number of refunds to be skipped for pagination",
						Default:     0,
						Minimum:     models.Float(0),
					},
				},
			},
		},
	}
}

func (o *FetchAllRefunds) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	opts := collectionParam(ectx, "additionalOptions", itemIndex)

	var terms []string

	if from, ok := optInt(opts, "from"); ok && from != 0 {
		terms = append(terms, "from="+strconv.FormatInt(from, 10))
	}

	if to, ok := optInt(opts, "to"); ok && to != 0 {
		terms = append(terms, "to="+strconv.FormatInt(to, 10))
	}

	// count equal to the default is left out to keep the query minimal.
	if count, ok := optInt(opts, "count"); ok && count != gateway.DefaultCount {
		if err := gateway.ValidateCount(count); err != nil {
			return nil, err
		}

		terms = append(terms, "count="+strconv.FormatInt(count, 10))
	}

	if skip, ok := optInt(opts, "skip"); ok && skip > 0 {
		terms = append(terms, "skip="+strconv.FormatInt(skip, 10))
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.RefundsPath+buildQuery(terms))
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while fetching refunds",
			rule{
				status:  http.StatusBadRequest,
				substr:  "payment id field is required",
				message: "Invalid request: The endpoint was accessed incorrectly",
			},
			rule{
				status:  http.StatusNotFound,
				message: "Not Found: The requested URL was not found on the server. Please check the endpoint.",
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchAllRefunds)(nil)
