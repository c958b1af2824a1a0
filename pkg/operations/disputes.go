package operations

import (
	"context"
	"net/http"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/models"
	"github.com/razorpay/razorpay-workflow-node/pkg/protocol"
)

// FetchAllDisputes lists disputes raised against the account, with optional
// expansion of related entities.
type FetchAllDisputes struct{}

func NewFetchAllDisputes() *FetchAllDisputes {
	return &FetchAllDisputes{}
}

func (o *FetchAllDisputes) ID() string       { return "fetchAllDisputes" }
func (o *FetchAllDisputes) Resource() string { return ResourceDispute }
func (o *FetchAllDisputes) Name() string     { return "Fetch All" }

func (o *FetchAllDisputes) Description() string {
	return "Retrieve details of all disputes raised against you"
}

func (o *FetchAllDisputes) Action() string { return "Fetch all disputes" }

func (o *FetchAllDisputes) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:  "object",
		Title: "Fetch All Disputes",
		Properties: map[string]*models.Property{
			"expand": {
				Type:        "array",
				Description: "Related entities to expand in the response",
				Items: &models.Property{
					Type: "string",
					Enum: []any{"payments", "transaction.settlement"},
				},
			},
		},
	}
}

func (o *FetchAllDisputes) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	var terms []string
	for _, entity := range stringList(ectx.Parameter("expand", itemIndex, nil)) {
		terms = append(terms, "expand[]="+entity)
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.DisputesPath+buildQuery(terms))
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid request parameters",
			"An error occurred while fetching disputes",
			rule{
				status:  http.StatusBadRequest,
				substr:  "expand must be one of following types",
				message: "Invalid expand parameter. Must be one of: payments, transaction.settlement",
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchAllDisputes)(nil)
