package web

import (
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/razorpay/razorpay-workflow-node/pkg/gateway"
	"github.com/razorpay/razorpay-workflow-node/pkg/operations"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handleExecutionError maps node and gateway errors to problem responses.
func handleExecutionError(c fiber.Ctx, err error) error {
	switch {
	case gateway.IsValidationError(err), gateway.IsMalformedIDError(err):
		return badRequest(c, err.Error())

	default:
		if opErr, ok := operations.AsOperationError(err); ok {
			status := fiber.StatusBadGateway
			if gatewayErr, ok := gateway.AsGatewayError(opErr.Err); ok && gatewayErr.StatusCode > 0 {
				status = gatewayErr.StatusCode
			}

			problem := problems.NewStatusProblem(status).
				WithInstance(c.Path()).
				WithType("gateway_error").
				WithDetail(opErr.Message)

			return c.Status(status).JSON(problem)
		}

		return internalError(c, err)
	}
}
