// Package web provides HTTP handlers for inspecting and executing the node
// during local development.
package web

import (
	"encoding/json"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/razorpay/razorpay-workflow-node/pkg/credentials"
	"github.com/razorpay/razorpay-workflow-node/pkg/host"
	"github.com/razorpay/razorpay-workflow-node/pkg/node"
	"github.com/razorpay/razorpay-workflow-node/pkg/operations"
	"github.com/razorpay/razorpay-workflow-node/pkg/registry"
)

type APIHandlers struct {
	registry       *registry.Registry
	credentialType *credentials.RazorpayAPI
	validator      *validator.Validate
	logger         *slog.Logger
}

func NewAPIHandlers(reg *registry.Registry, validator *validator.Validate, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		registry:       reg,
		credentialType: credentials.NewRazorpayAPI(),
		validator:      validator,
		logger:         logger,
	}
}

// GetOperations lists every registered operation with its schema.
func (h *APIHandlers) GetOperations(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"operations": h.registry.Components(),
	})
}

// GetOperation returns a single operation's metadata.
func (h *APIHandlers) GetOperation(c fiber.Ctx) error {
	operation, err := h.registry.Operation(c.Params("id"))
	if err != nil {
		return notFound(c, "operation not found")
	}

	return c.JSON(fiber.Map{
		"id":          operation.ID(),
		"resource":    operation.Resource(),
		"name":        operation.Name(),
		"description": operation.Description(),
		"action":      operation.Action(),
		"schema":      operation.Schema(),
	})
}

// ExecuteNode runs the node over the posted input items.
func (h *APIHandlers) ExecuteNode(c fiber.Ctx) error {
	req, err := h.parseExecuteRequest(c)
	if err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	for i, item := range req.Items {
		operationID, _ := item["operation"].(string)
		if operationID == "" {
			return badRequest(c, "missing 'operation' parameter")
		}

		if err := h.registry.ValidateParameters(operationID, item); err != nil {
			h.logger.Debug("Parameter validation failed", "item_index", i, "error", err)

			return badRequest(c, err.Error())
		}
	}

	ectx := host.NewContext(req.Items,
		host.WithCredentials(operations.CredentialName, req.Credentials.toModel()),
		host.WithContinueOnFail(req.ContinueOnFail),
	)

	razorpayNode := node.NewRazorpayNode(ectx.ExecutionID, h.registry)

	items, err := razorpayNode.Execute(c.Context(), ectx)
	if err != nil {
		return handleExecutionError(c, err)
	}

	return c.JSON(ExecuteResponse{
		ExecutionID: ectx.ExecutionID,
		Items:       items,
	})
}

// TestCredentials verifies a posted key pair against the gateway.
func (h *APIHandlers) TestCredentials(c fiber.Ctx) error {
	var req CredentialsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, err.Error())
	}

	ectx := host.NewContext(nil)
	if err := h.credentialType.Test(c.Context(), ectx.HTTPDoer(), req.toModel()); err != nil {
		return c.JSON(TestCredentialsResponse{OK: false, Message: err.Error()})
	}

	return c.JSON(TestCredentialsResponse{OK: true})
}

// HealthCheck reports server liveness.
func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *APIHandlers) parseExecuteRequest(c fiber.Ctx) (*ExecuteRequest, error) {
	var req ExecuteRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return nil, err
	}

	if err := h.validator.Struct(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
