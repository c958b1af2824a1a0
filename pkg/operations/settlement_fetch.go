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

// FetchSettlement retrieves one settlement by id.
type FetchSettlement struct{}

func NewFetchSettlement() *FetchSettlement {
	return &FetchSettlement{}
}

func (o *FetchSettlement) ID() string       { return "fetchSettlement" }
func (o *FetchSettlement) Resource() string { return ResourceSettlement }
func (o *FetchSettlement) Name() string     { return "Fetch" }

func (o *FetchSettlement) Description() string {
	return "Fetch settlement details by settlement ID"
}

func (o *FetchSettlement) Action() string { return "Fetch a settlement" }

func (o *FetchSettlement) Schema() *models.JSONSchema {
	return &models.JSONSchema{
		Type:     "object",
		Title:    "Fetch Settlement",
		Required: []string{"settlementId"},
		Properties: map[string]*models.Property{
			"settlementId": {
				Type:        "string",
				Description: "Unique identifier of the settlement to be retrieved",
				Pattern:     "^setl_.+$",
			},
		},
	}
}

func (o *FetchSettlement) Execute(ctx context.Context, ectx protocol.ExecutionContext, itemIndex int) (map[string]any, error) {
	logger := log.WithOperation(o.ID(), itemIndex)

	settlementID := stringParam(ectx, "settlementId", itemIndex)
	if err := gateway.ValidateSettlementID(settlementID); err != nil {
		return nil, err
	}

	client, err := newClient(ctx, ectx, logger)
	if err != nil {
		return nil, err
	}

	response, err := client.Get(ctx, gateway.SettlementsPath+"/"+settlementID)
	if err != nil {
		return nil, translateError(o.ID(), err,
			"Invalid settlement ID or request parameters",
			"An error occurred while fetching the settlement",
			rule{
				status:  http.StatusNotFound,
				message: fmt.Sprintf("Settlement not found: The settlement ID %q does not exist or does not belong to your account.", settlementID),
			},
		)
	}

	return response, nil
}

var _ protocol.Operation = (*FetchSettlement)(nil)
