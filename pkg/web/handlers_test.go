package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razorpay/razorpay-workflow-node/pkg/log"
	"github.com/razorpay/razorpay-workflow-node/pkg/registry"
	"github.com/razorpay/razorpay-workflow-node/pkg/web"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	reg := registry.NewRegistry(log.WithModule("test"))
	reg.RegisterDefaultOperations()

	handlers := web.NewAPIHandlers(reg, validator.New(validator.WithRequiredStructEnabled()), log.WithModule("test"))

	app := fiber.New()

	o := app.Group("/operations")
	o.Get("/", handlers.GetOperations)
	o.Get("/:id", handlers.GetOperation)

	app.Post("/executions", handlers.ExecuteNode)
	app.Post("/credentials/test", handlers.TestCredentials)

	return app
}

func TestAPIHandlers_GetOperations(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/operations/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Operations []struct {
			Type     string `json:"type"`
			Resource string `json:"resource"`
		} `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Len(t, payload.Operations, 12)
	assert.Equal(t, "fetchAllOrders", payload.Operations[0].Type)
	assert.Equal(t, "order", payload.Operations[0].Resource)
}

func TestAPIHandlers_GetOperation(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/operations/createPaymentLink", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "createPaymentLink", payload["id"])
	assert.Equal(t, "paymentLink", payload["resource"])
	assert.NotNil(t, payload["schema"])
}

func TestAPIHandlers_GetOperation_NotFound(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/operations/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIHandlers_ExecuteNode_InvalidBody(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/executions", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIHandlers_ExecuteNode_MissingOperation(t *testing.T) {
	app := setupTestApp(t)

	payload := web.ExecuteRequest{
		Items: []map[string]any{{}},
		Credentials: web.CredentialsRequest{
			KeyID:     "rzp_test_x",
			KeySecret: "secret",
		},
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/executions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(respBody), "missing 'operation' parameter")
}

func TestAPIHandlers_ExecuteNode_SchemaValidation(t *testing.T) {
	app := setupTestApp(t)

	payload := web.ExecuteRequest{
		Items: []map[string]any{{
			"operation": "createPaymentLink",
			"amount":    "not-a-number",
			"currency":  "INR",
		}},
		Credentials: web.CredentialsRequest{
			KeyID:     "rzp_test_x",
			KeySecret: "secret",
		},
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/executions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIHandlers_TestCredentials_MissingFields(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/credentials/test", bytes.NewReader([]byte(`{"key_id": "rzp_test_x"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
