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

// FetchAllSettlements lists settlements. The from/to filters are raw Unix
// seconds and are bounded client-side to the window the endpoint accepts.
type FetchAllSettlements struct{}

func NewFetchAllSettlements() *FetchAllSettlements {
	return &FetchAllSettlements{}
}

func (o *FetchAllSettlements) ID() string       { return "fetchAllSettlements" }
func (o *FetchAllSettlements) Resource() string { return ResourceSettlement }
func (o *FetchAllSettlements) Name() string     { return "Fetch All" }

func (o *FetchAllSettlements) Description() string {
	return "Retrieve details of all settlements with optional filters"
}

func (o *FetchAllSettlements) Action() string { return "Fetch all settlements" }

func (o *FetchAllSettlements) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Fetch All Settlements",
		Properties: map[string]*models.Property{
			"additionalOptions": {
				Type:        "object",
				Description: "Optional filters for the settlement listing",
				Properties: map[string]*models.Property{
					"from": {
						Type:        "number",
						Description: "Unix timestamp (in seconds) from when settlements are to be fetched",
						Minimum:     models.Float(gateway.MinSettlementTimestamp),
						Maximum:     models.Float(gateway.MaxSettlementTimestamp),
					},
					"to": {
						Type:        "number",
						Description: "Unix timestamp (in seconds) till when settlements are to be fetched",
						Minimum:     models.Float(gateway.MinSettlementTimestamp),
						Maximum:     models.Float(gateway.MaxSettlementTimestamp),
					},
					"count": {
						Type:        "number",
						Description: "Number of settlement records to be fetched (1 to 100)",
						Default:     gateway.DefaultCount,
						Minimum:     models.Float(gateway.MinCount),
						Maximum:     models.Float(gateway.MaxCount),
					},
					"skip": {
						Type:        "number",
						Description: "Number of settlement records to be skipped for pagination",
						Default:     0,
						Minimum:     models.Float(0),
					},
				},
			},
		},
	}
}

func (o *FetchAllSettlements) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	opts := collectionParam(ectx, "additionalOptions", itemIndex)

	var terms []string

	if from, ok := optInt(opts, "from"); ok && from != 0 {
		if err := gateway.ValidateSettlementTimestamp("From", from); err != nil {
			return nil, err
		}

		terms = append(terms, "from="+strconv.FormatInt(from, 10))
	}

	if to, ok := optInt(opts, "to"); ok && to != 0 {
		if err := gateway.ValidateSettlementTimestamp("To", to); err != nil {
			return nil, err
		}

		terms = append(terms, "to="+strconv.FormatInt(to, 10))
	}

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

	response, err := client.Get(ctx, gateway.SettlementsPath+"/"+buildQuery(terms))
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while fetching settlements",
			rule{
				status:  http.StatusBadRequest,
				substr:  "from must be between",
				message: "From timestamp must be between 946684800 and 4765046400",
			},
			rule{
				status:  http.StatusBadRequest,
				substr:  "to must be between",
				message: "To timestamp must be between 946684800 and 4765046400",
			},
			rule{
				status:  http.StatusBadRequest,
				substr:  "count must be at least 1",
				message: "Count must be at least 1",
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchAllSettlements)(nil)
